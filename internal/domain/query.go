package domain

// TripFilter carries the search criteria for the trip collection.
// Zero-value string fields and nil numeric bounds impose no constraint;
// all supplied criteria are combined with logical AND.
type TripFilter struct {
	// Destination matches as a case-insensitive substring of Trip.Destination.
	Destination string
	// Country matches as a case-insensitive substring of Trip.Country.
	Country string
	// MinPrice and MaxPrice are inclusive bounds on Trip.Price.
	MinPrice *float64
	MaxPrice *float64
	// MinRating is an inclusive lower bound on Trip.Rating.
	MinRating *float64
}

// FieldStats holds the aggregate statistics for one numeric trip field.
// Average is rounded to 2 decimal places.
type FieldStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Sum     float64 `json:"sum"`
	Count   int     `json:"count"`
}

// Statistics is the aggregate view over all trips currently in the store.
// Fields is keyed by numeric field name (duration_days, price, rating,
// group_size) and is nil when TripCount is zero — there is nothing to
// aggregate over an empty collection.
type Statistics struct {
	TripCount int
	Fields    map[string]FieldStats
}

package models

// PathPoint is one GPS sample of a recorded run. The full path is stored as
// an ordered jsonb array of these pairs so it round-trips without any ad hoc
// string coercion.
type PathPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Run is a single recorded workout. Runs are insert-only: once saved they are
// never mutated, only deleted by their own id.
type Run struct {
	ID         int64       `json:"id"`
	UserID     string      `json:"uid"`
	Timestamp  *int64      `json:"timestamp"`
	Duration   *float64    `json:"duration"`
	DistanceKM *float64    `json:"distance"`
	Calories   *float64    `json:"calories"`
	AvgSpeed   *float64    `json:"speed"`
	PathPoints []PathPoint `json:"path_points,omitempty"`
	ImageURL   *string     `json:"image_url"`
}

// RunSummary is the get_runs response shape. The stored path is deliberately
// left out to keep the list payload small for the mobile client.
type RunSummary struct {
	ID        int64    `json:"id"`
	Timestamp *int64   `json:"timestamp"`
	Duration  *float64 `json:"duration"`
	Distance  *float64 `json:"distance"`
	Calories  *float64 `json:"calories"`
	Speed     *float64 `json:"speed"`
	ImageURL  *string  `json:"image_url"`
}

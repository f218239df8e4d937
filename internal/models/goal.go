package models

// WeeklyGoal is keyed by (user_id, week_start_date). WeekStartDate is the
// Monday of the target week in YYYY-MM-DD form, chosen by the client.
type WeeklyGoal struct {
	UserID         string   `json:"uid"`
	WeekStartDate  string   `json:"week_start_date"`
	TargetKM       *float64 `json:"target_km"`
	TargetCalories *float64 `json:"target_calories"`
}

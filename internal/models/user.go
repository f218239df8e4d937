package models

// User is a mobile-app account keyed by the external uid the app supplies.
// Weight and height stay nullable in storage; read-side defaults are applied
// by the handler, not here.
type User struct {
	UserID string   `json:"uid"`
	Name   *string  `json:"name"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

const (
	// Defaults substituted when a profile was created without measurements.
	DefaultWeightKG = 70.0
	DefaultHeightCM = 175.0
)

package models

import "github.com/julianstephens/koffee/internal/constants"

// Profile holds the default planner inputs of the local user
type Profile struct {
	WeightKg    float64                    `json:"weight_kg"`   // body weight in kilograms
	WakeTime    string                     `json:"wake_time"`   // HH:MM format
	SleepTime   string                     `json:"sleep_time"`  // HH:MM format
	Sensitivity constants.SensitivityLevel `json:"sensitivity"` // low, medium or high
	InstallID   string                     `json:"install_id"`  // random ID assigned by init
}

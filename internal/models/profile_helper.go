package models

import (
	"fmt"

	"github.com/julianstephens/koffee/internal/constants"
)

// MapToProfile converts a map of key-value pairs to a Profile struct.
func MapToProfile(data map[string]string) (Profile, error) {
	profile := Profile{}

	for key, value := range data {
		if value == "" {
			continue
		}
		switch key {
		case constants.SettingWeightKg:
			if _, err := fmt.Sscanf(value, "%g", &profile.WeightKg); err != nil {
				return Profile{}, fmt.Errorf("parsing weight_kg: %w", err)
			}
		case constants.SettingWakeTime:
			profile.WakeTime = value
		case constants.SettingSleepTime:
			profile.SleepTime = value
		case constants.SettingSensitivity:
			level, err := ParseSensitivity(value)
			if err != nil {
				return Profile{}, fmt.Errorf("parsing sensitivity: %w", err)
			}
			profile.Sensitivity = level
		case constants.SettingInstallID:
			profile.InstallID = value
		}
	}
	return profile, nil
}

// ProfileToMap converts a Profile struct to a map of key-value pairs.
func ProfileToMap(profile Profile) map[string]string {
	return map[string]string{
		constants.SettingWeightKg:    fmt.Sprintf("%g", profile.WeightKg),
		constants.SettingWakeTime:    profile.WakeTime,
		constants.SettingSleepTime:   profile.SleepTime,
		constants.SettingSensitivity: string(profile.Sensitivity),
		constants.SettingInstallID:   profile.InstallID,
	}
}

// ApplyDefaultProfile applies default values to missing profile fields.
func ApplyDefaultProfile(profile *Profile) {
	if profile.WeightKg <= 0 {
		profile.WeightKg = constants.DefaultWeightKg
	}
	if profile.WakeTime == "" {
		profile.WakeTime = constants.DefaultWakeTime
	}
	if profile.SleepTime == "" {
		profile.SleepTime = constants.DefaultSleepTime
	}
	if profile.Sensitivity == "" {
		profile.Sensitivity = constants.DefaultSensitivity
	}
}

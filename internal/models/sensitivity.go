package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/koffee/internal/constants"
)

// Sensitivities lists the accepted levels from most to least tolerant.
var Sensitivities = []constants.SensitivityLevel{
	constants.SensitivityLow,
	constants.SensitivityMedium,
	constants.SensitivityHigh,
}

// ParseSensitivity parses a sensitivity level, ignoring case and surrounding whitespace.
func ParseSensitivity(s string) (constants.SensitivityLevel, error) {
	switch level := constants.SensitivityLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case constants.SensitivityLow, constants.SensitivityMedium, constants.SensitivityHigh:
		return level, nil
	default:
		return "", fmt.Errorf("invalid sensitivity: %q", s)
	}
}

// SensitivityFactor returns the multiplier applied to the daily cap.
// Unknown levels are treated as medium.
func SensitivityFactor(level constants.SensitivityLevel) float64 {
	switch level {
	case constants.SensitivityLow:
		return constants.LowSensitivityFactor
	case constants.SensitivityHigh:
		return constants.HighSensitivityFactor
	default:
		return constants.MediumSensitivityFactor
	}
}

// SensitivityLabel returns the display form of a level, e.g. "Medium".
func SensitivityLabel(level constants.SensitivityLevel) string {
	s := string(level)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

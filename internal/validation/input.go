package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/utils"
)

var (
	ErrInvalidWeight      = errors.New("weight must be a positive number of kilograms")
	ErrInvalidTime        = errors.New("time must be in HH:MM format")
	ErrInvalidSensitivity = errors.New("sensitivity must be low, medium, or high")
)

// ParseWeight parses a body weight in kilograms. Any finite positive number is accepted.
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, ErrInvalidWeight
	}
	return w, nil
}

// ParseFormWeight parses a weight and additionally enforces the form range.
func ParseFormWeight(s string) (float64, error) {
	w, err := ParseWeight(s)
	if err != nil {
		return 0, err
	}
	if err := CheckFormWeight(w); err != nil {
		return 0, err
	}
	return w, nil
}

// CheckFormWeight reports whether w lies within the form's accepted range.
func CheckFormWeight(w float64) error {
	if w < constants.MinFormWeightKg || w > constants.MaxFormWeightKg {
		return fmt.Errorf("weight must be between %g and %g kg", constants.MinFormWeightKg, constants.MaxFormWeightKg)
	}
	return nil
}

// CheckTime validates an HH:MM clock time.
func CheckTime(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return ErrInvalidTime
	}
	return nil
}

// ParseSensitivity parses a sensitivity level case-insensitively.
func ParseSensitivity(s string) (constants.SensitivityLevel, error) {
	level, err := models.ParseSensitivity(s)
	if err != nil {
		return "", ErrInvalidSensitivity
	}
	return level, nil
}

// CheckProfile validates every field of a stored or submitted profile.
func CheckProfile(p models.Profile) error {
	var errs []error
	if p.WeightKg <= 0 || math.IsNaN(p.WeightKg) || math.IsInf(p.WeightKg, 0) {
		errs = append(errs, fmt.Errorf("weight: %w", ErrInvalidWeight))
	}
	if err := CheckTime(p.WakeTime); err != nil {
		errs = append(errs, fmt.Errorf("wake time: %w", err))
	}
	if err := CheckTime(p.SleepTime); err != nil {
		errs = append(errs, fmt.Errorf("sleep time: %w", err))
	}
	if _, err := ParseSensitivity(string(p.Sensitivity)); err != nil {
		errs = append(errs, fmt.Errorf("sensitivity: %w", err))
	}
	return errors.Join(errs...)
}

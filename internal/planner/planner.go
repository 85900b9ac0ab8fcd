// Package planner computes daily caffeine dose plans.
package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/utils"
	"github.com/julianstephens/koffee/internal/validation"
)

// Planner turns a person's weight, waking window and sensitivity into a DosePlan.
// It holds no state; the zero value is ready to use.
type Planner struct{}

func New() *Planner {
	return &Planner{}
}

// Plan is a convenience wrapper around Planner.Plan.
func Plan(weightKg float64, wake, sleep time.Time, level constants.SensitivityLevel) models.DosePlan {
	return New().Plan(weightKg, wake, sleep, level)
}

// DailyLimit returns the recommended daily caffeine limit in mg.
func (p *Planner) DailyLimit(weightKg float64, level constants.SensitivityLevel) float64 {
	weightLbs := weightKg * constants.PoundsPerKilogram
	capMg := math.Min(weightLbs*constants.MgPerPound, constants.MaxDailyMg)
	return capMg * models.SensitivityFactor(level)
}

// Plan computes the dose plan. Only the hour and minute of wake and sleep are
// used. A sleep time at or before the wake time is taken to fall on the next day.
// Callers are expected to have validated weightKg > 0.
func (p *Planner) Plan(weightKg float64, wake, sleep time.Time, level constants.SensitivityLevel) models.DosePlan {
	dailyLimit := p.DailyLimit(weightKg, level)

	wake = utils.ClockOf(wake)
	sleep = utils.ClockOf(sleep)
	if !sleep.After(wake) {
		sleep = sleep.Add(24 * time.Hour)
	}

	firstAt := wake.Add(constants.FirstDoseOffset)
	secondAt := wake.Add(constants.SecondDoseOffset)
	thirdAt := sleep.Add(-constants.ThirdDoseLeadTime)

	plan := models.DosePlan{
		DailyLimitMg: dailyLimit,
		First: models.DoseSlot{
			Time:     utils.FormatTime(firstAt),
			AmountMg: models.RoundMg(dailyLimit * constants.FirstDoseShare),
		},
		Second: models.DoseSlot{
			Time:     utils.FormatTime(secondAt),
			AmountMg: models.RoundMg(dailyLimit * constants.SecondDoseShare),
		},
		Third: models.DoseSlot{
			Time:     utils.FormatTime(thirdAt),
			AmountMg: models.RoundMg(dailyLimit * constants.ThirdDoseShare),
		},
	}

	// Too close to the second dose or to bedtime: fold the third share into the second.
	if thirdAt.Sub(secondAt) < constants.MinDoseInterval || !thirdAt.Before(sleep) {
		plan.Third = models.DoseSlot{}
		plan.Second.AmountMg = models.RoundMg(dailyLimit * (constants.SecondDoseShare + constants.ThirdDoseShare))
	}

	return plan
}

// PlanProfile validates the string fields of a profile and plans from them.
func (p *Planner) PlanProfile(profile models.Profile) (models.DosePlan, error) {
	if err := validation.CheckProfile(profile); err != nil {
		return models.DosePlan{}, err
	}
	wake, err := utils.ParseTime(profile.WakeTime)
	if err != nil {
		return models.DosePlan{}, fmt.Errorf("wake time: %w", err)
	}
	sleep, err := utils.ParseTime(profile.SleepTime)
	if err != nil {
		return models.DosePlan{}, fmt.Errorf("sleep time: %w", err)
	}
	level, err := models.ParseSensitivity(string(profile.Sensitivity))
	if err != nil {
		return models.DosePlan{}, err
	}
	return p.Plan(profile.WeightKg, wake, sleep, level), nil
}

package constants

import "time"

// SensitivityLevel represents a caffeine tolerance category
type SensitivityLevel string

const (
	SensitivityLow    SensitivityLevel = "low"
	SensitivityMedium SensitivityLevel = "medium"
	SensitivityHigh   SensitivityLevel = "high"

	// Sensitivity multipliers applied to the weight-based cap
	LowSensitivityFactor    = 1.2
	MediumSensitivityFactor = 1.0
	HighSensitivityFactor   = 0.8

	PoundsPerKilogram = 2.20462
	MgPerPound        = 2.72  // weight-based allowance per pound of body weight
	MaxDailyMg        = 400.0 // absolute daily cap before sensitivity scaling

	// Dose shares of the daily limit. The three regular shares must sum to 1.0.
	FirstDoseShare  = 0.4
	SecondDoseShare = 0.3
	ThirdDoseShare  = 0.3

	FirstDoseOffset     = 45 * time.Minute // after waking
	SecondDoseOffset    = 5 * time.Hour    // after waking
	ThirdDoseLeadTime   = 6 * time.Hour    // before bedtime
	MinDoseInterval     = 3 * time.Hour    // between second and third dose
	AmountPrecisionMult = 100              // amounts are rounded to 2 decimals

	// Form limits and defaults
	MinFormWeightKg      = 20.0
	MaxFormWeightKg      = 200.0
	DefaultWeightKg      = 70.0
	DefaultWakeTime      = "07:00"
	DefaultSleepTime     = "23:00"
	DefaultSensitivity   = SensitivityMedium
	NoThirdDoseRationale = "Not recommended due to proximity to bedtime"
)

func init() {
	// Runtime validation: ensure dose shares sum to 1.0
	if FirstDoseShare+SecondDoseShare+ThirdDoseShare != 1.0 {
		panic("FirstDoseShare, SecondDoseShare and ThirdDoseShare must sum to 1.0")
	}
}

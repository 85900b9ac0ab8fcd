package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/validation"
)

// FormModel holds the raw values bound to the form fields
type FormModel struct {
	Weight      string
	WakeTime    string
	SleepTime   string
	Sensitivity constants.SensitivityLevel
}

// NewFormModel pre-fills the form from a profile, falling back to defaults.
func NewFormModel(profile models.Profile) *FormModel {
	models.ApplyDefaultProfile(&profile)
	weight := profile.WeightKg
	if validation.CheckFormWeight(weight) != nil {
		weight = constants.DefaultWeightKg
	}
	return &FormModel{
		Weight:      strconv.FormatFloat(weight, 'f', -1, 64),
		WakeTime:    profile.WakeTime,
		SleepTime:   profile.SleepTime,
		Sensitivity: profile.Sensitivity,
	}
}

// Profile converts the submitted values. It fails only if a value bypassed validation.
func (fm *FormModel) Profile() (models.Profile, error) {
	weight, err := validation.ParseFormWeight(fm.Weight)
	if err != nil {
		return models.Profile{}, err
	}
	profile := models.Profile{
		WeightKg:    weight,
		WakeTime:    fm.WakeTime,
		SleepTime:   fm.SleepTime,
		Sensitivity: fm.Sensitivity,
	}
	if err := validation.CheckProfile(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func sensitivityOptions() []huh.Option[constants.SensitivityLevel] {
	options := make([]huh.Option[constants.SensitivityLevel], 0, len(models.Sensitivities))
	for _, level := range models.Sensitivities {
		options = append(options, huh.NewOption(models.SensitivityLabel(level), level))
	}
	return options
}

func NewInputForm(fm *FormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Description("Between 20 and 200").
				Value(&fm.Weight).
				Validate(func(s string) error {
					_, err := validation.ParseFormWeight(s)
					return err
				}),
			huh.NewInput().
				Title("Wake-up time (HH:MM)").
				Value(&fm.WakeTime).
				Validate(validation.CheckTime),
			huh.NewInput().
				Title("Bedtime (HH:MM)").
				Value(&fm.SleepTime).
				Validate(validation.CheckTime),
			huh.NewSelect[constants.SensitivityLevel]().
				Title("Caffeine sensitivity").
				Options(sensitivityOptions()...).
				Value(&fm.Sensitivity),
		),
	).WithShowHelp(true)
}

package cli

import (
	"fmt"

	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/validation"
)

type ProfileCmd struct {
	List bool `help:"List the stored profile."`

	Weight      *float64 `help:"Default body weight in kg."`
	Wake        *string  `help:"Default wake-up time (HH:MM)."`
	Sleep       *string  `help:"Default bedtime (HH:MM)."`
	Sensitivity *string  `help:"Default caffeine sensitivity (low|medium|high)."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if !ctx.Loaded {
		return fmt.Errorf("storage not initialized, run 'koffee init' first")
	}
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if c.List {
		fmt.Fprintln(ctx.Out, "Current Profile:")
		fmt.Fprintf(ctx.Out, "  Weight:      %g kg\n", profile.WeightKg)
		fmt.Fprintf(ctx.Out, "  Wake-up:     %s\n", profile.WakeTime)
		fmt.Fprintf(ctx.Out, "  Bedtime:     %s\n", profile.SleepTime)
		fmt.Fprintf(ctx.Out, "  Sensitivity: %s\n", models.SensitivityLabel(profile.Sensitivity))
		return nil
	}

	updated := false
	if c.Weight != nil {
		profile.WeightKg = *c.Weight
		updated = true
	}
	if c.Wake != nil {
		profile.WakeTime = *c.Wake
		updated = true
	}
	if c.Sleep != nil {
		profile.SleepTime = *c.Sleep
		updated = true
	}
	if c.Sensitivity != nil {
		level, err := validation.ParseSensitivity(*c.Sensitivity)
		if err != nil {
			return err
		}
		profile.Sensitivity = level
		updated = true
	}

	if !updated {
		fmt.Fprintln(ctx.Out, "No changes specified. Use --list to view the profile or flags to update it.")
		return nil
	}

	if err := validation.CheckProfile(profile); err != nil {
		return err
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Profile updated successfully.")
	return nil
}

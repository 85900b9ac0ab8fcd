package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/prompt"
	"github.com/julianstephens/koffee/internal/report"
	"github.com/julianstephens/koffee/internal/validation"
)

type CalcCmd struct {
	Weight      string `short:"w" help:"Body weight in kg; asked interactively when omitted."`
	Wake        string `short:"a" help:"Wake-up time (HH:MM)."`
	Sleep       string `short:"b" help:"Bedtime (HH:MM)."`
	Sensitivity string `short:"s" help:"Caffeine sensitivity (low|medium|high)."`
	Save        bool   `help:"Store the answers as the default profile."`
	JSON        bool   `name:"json" help:"Print the plan as JSON instead of text."`
}

// preset validates the answers given as flags.
func (c *CalcCmd) preset() (models.Profile, error) {
	var profile models.Profile
	var err error
	if c.Weight != "" {
		if profile.WeightKg, err = validation.ParseWeight(c.Weight); err != nil {
			return profile, fmt.Errorf("--weight: %w", err)
		}
	}
	if c.Wake != "" {
		if err := validation.CheckTime(c.Wake); err != nil {
			return profile, fmt.Errorf("--wake: %w", err)
		}
		profile.WakeTime = c.Wake
	}
	if c.Sleep != "" {
		if err := validation.CheckTime(c.Sleep); err != nil {
			return profile, fmt.Errorf("--sleep: %w", err)
		}
		profile.SleepTime = c.Sleep
	}
	if c.Sensitivity != "" {
		if profile.Sensitivity, err = validation.ParseSensitivity(c.Sensitivity); err != nil {
			return profile, fmt.Errorf("--sensitivity: %w", err)
		}
	}
	return profile, nil
}

func (c *CalcCmd) Run(ctx *Context) error {
	preset, err := c.preset()
	if err != nil {
		return err
	}

	interactive := preset.WeightKg <= 0 || preset.WakeTime == "" || preset.SleepTime == "" || preset.Sensitivity == ""
	if interactive && !c.JSON {
		fmt.Fprintln(ctx.Out, "Optimal Caffeine Intake Calculator")
		fmt.Fprintln(ctx.Out, "----------------------------------")
	}

	promptOut := ctx.Out
	if c.JSON {
		promptOut = ctx.errOut()
	}
	profile, err := prompt.New(ctx.In, promptOut).Fill(preset, ctx.StoredProfile())
	if err != nil {
		return err
	}

	plan, err := ctx.Planner.PlanProfile(profile)
	if err != nil {
		return err
	}
	logger.Debug("Computed plan", "weight_kg", profile.WeightKg, "sensitivity", profile.Sensitivity, "daily_limit_mg", plan.DailyLimitMg)

	if c.Save {
		if err := ctx.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	fmt.Fprintln(ctx.Out, "\nResults:")
	fmt.Fprint(ctx.Out, report.Render(plan, ctx.Beverages))
	if c.Save {
		fmt.Fprintln(ctx.Out, "\nProfile saved.")
	}
	return nil
}

// Package report renders dose plans and the beverage table as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
)

const (
	BeveragesHeading = "Caffeine Content of Common Beverages (in mg):"
	Disclaimer       = "Note: This is a general guideline. Individual responses to caffeine may vary.\n" +
		"Consult with a healthcare professional for personalized advice."
)

// FormatPlan renders the daily limit followed by one line per dose slot.
func FormatPlan(plan models.DosePlan) string {
	return FormatLimit(plan) + "\n" + FormatDoses(plan)
}

// FormatLimit renders the daily limit line without a trailing newline.
func FormatLimit(plan models.DosePlan) string {
	return fmt.Sprintf("Daily caffeine limit: %.2f mg", plan.DailyLimitMg)
}

// FormatDoses renders one line per dose slot, noting a dropped third dose.
func FormatDoses(plan models.DosePlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "First dose: %.2f mg at %s\n", plan.First.AmountMg, plan.First.Time)
	fmt.Fprintf(&b, "Second dose: %.2f mg at %s\n", plan.Second.AmountMg, plan.Second.Time)
	if plan.HasThirdDose() {
		fmt.Fprintf(&b, "Third dose: %.2f mg at %s\n", plan.Third.AmountMg, plan.Third.Time)
	} else {
		fmt.Fprintf(&b, "Third dose: %s\n", constants.NoThirdDoseRationale)
	}
	return b.String()
}

// FormatBeverages renders the beverage table, one "name: N mg" line per entry.
func FormatBeverages(list []models.Beverage) string {
	var b strings.Builder
	b.WriteString(BeveragesHeading + "\n")
	for _, bev := range list {
		fmt.Fprintf(&b, "%s: %d mg\n", bev.Name, bev.CaffeineMg)
	}
	return b.String()
}

// Render returns the full report: plan, beverage table and disclaimer.
func Render(plan models.DosePlan, list []models.Beverage) string {
	return FormatPlan(plan) + "\n" + FormatBeverages(list) + "\n" + Disclaimer + "\n"
}

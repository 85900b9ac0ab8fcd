package models

import (
	"math"

	"github.com/julianstephens/koffee/internal/constants"
)

// DoseSlot is one recommended intake
type DoseSlot struct {
	Time     string  `json:"time,omitempty"` // HH:MM format, empty when the slot is not recommended
	AmountMg float64 `json:"amount_mg"`
}

// DosePlan is the outcome of a single planner run. It is built fresh per
// invocation and never mutated afterwards.
type DosePlan struct {
	DailyLimitMg float64  `json:"daily_limit_mg"`
	First        DoseSlot `json:"first_dose"`
	Second       DoseSlot `json:"second_dose"`
	Third        DoseSlot `json:"third_dose"`
}

// HasThirdDose reports whether the plan recommends a third dose.
func (p DosePlan) HasThirdDose() bool {
	return p.Third.Time != ""
}

// TotalMg returns the sum of all slot amounts.
func (p DosePlan) TotalMg() float64 {
	return p.First.AmountMg + p.Second.AmountMg + p.Third.AmountMg
}

// Slots returns the recommended slots in intake order.
func (p DosePlan) Slots() []DoseSlot {
	slots := []DoseSlot{p.First, p.Second}
	if p.HasThirdDose() {
		slots = append(slots, p.Third)
	}
	return slots
}

// RoundMg rounds an amount to two decimal places.
func RoundMg(mg float64) float64 {
	return math.Round(mg*constants.AmountPrecisionMult) / constants.AmountPrecisionMult
}

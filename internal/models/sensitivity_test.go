package models

import (
	"testing"

	"github.com/julianstephens/koffee/internal/constants"
)

func TestParseSensitivity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    constants.SensitivityLevel
		wantErr bool
	}{
		{name: "low", input: "low", want: constants.SensitivityLow},
		{name: "medium", input: "medium", want: constants.SensitivityMedium},
		{name: "high", input: "high", want: constants.SensitivityHigh},
		{name: "upper case", input: "HIGH", want: constants.SensitivityHigh},
		{name: "mixed case with spaces", input: "  Medium ", want: constants.SensitivityMedium},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "extreme", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSensitivity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSensitivity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSensitivity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSensitivityFactor(t *testing.T) {
	tests := []struct {
		level constants.SensitivityLevel
		want  float64
	}{
		{constants.SensitivityLow, 1.2},
		{constants.SensitivityMedium, 1.0},
		{constants.SensitivityHigh, 0.8},
		{"", 1.0},
	}

	for _, tt := range tests {
		if got := SensitivityFactor(tt.level); got != tt.want {
			t.Errorf("SensitivityFactor(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSensitivityLabel(t *testing.T) {
	if got := SensitivityLabel(constants.SensitivityMedium); got != "Medium" {
		t.Errorf("SensitivityLabel(medium) = %q, want %q", got, "Medium")
	}
	if got := SensitivityLabel(""); got != "" {
		t.Errorf("SensitivityLabel(\"\") = %q, want empty", got)
	}
}

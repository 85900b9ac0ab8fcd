package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/koffee/internal/beverages"
	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/storage"
)

func newTestModel(t *testing.T, store storage.Provider, save bool) Model {
	t.Helper()
	m := NewModel(Options{Store: store, Beverages: beverages.Default(), SaveProfile: save})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestNewModelPrefillsDefaults(t *testing.T) {
	m := newTestModel(t, nil, false)

	if m.State() != StateForm {
		t.Errorf("initial state = %v, want StateForm", m.State())
	}
	if m.formModel.Weight != "70" || m.formModel.WakeTime != "07:00" || m.formModel.SleepTime != "23:00" {
		t.Errorf("form model = %+v, want built-in defaults", m.formModel)
	}
	if m.formModel.Sensitivity != constants.SensitivityMedium {
		t.Errorf("Sensitivity = %q, want medium", m.formModel.Sensitivity)
	}
}

func TestNewModelPrefillsStoredProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.SaveProfile(models.Profile{
		WeightKg:    250, // outside the form range
		WakeTime:    "06:15",
		SleepTime:   "22:45",
		Sensitivity: constants.SensitivityLow,
	})

	m := newTestModel(t, store, false)
	if m.formModel.Weight != "70" {
		t.Errorf("Weight = %q, want out-of-range weight replaced by default", m.formModel.Weight)
	}
	if m.formModel.WakeTime != "06:15" || m.formModel.SleepTime != "22:45" {
		t.Errorf("times = %s/%s, want stored profile", m.formModel.WakeTime, m.formModel.SleepTime)
	}
	if m.formModel.Sensitivity != constants.SensitivityLow {
		t.Errorf("Sensitivity = %q, want low", m.formModel.Sensitivity)
	}
}

func TestSubmitComputesPlanAndSavesProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.SaveProfile(models.Profile{WeightKg: 70, WakeTime: "07:00", SleepTime: "23:00", Sensitivity: "medium", InstallID: "id-1"})
	m := newTestModel(t, store, true)

	m.formModel.SleepTime = "14:00"
	if err := m.submit(); err != nil {
		t.Fatalf("submit() error = %v", err)
	}

	plan, ok := m.Plan()
	if !ok {
		t.Fatal("Plan() returned no plan after submit")
	}
	if plan.HasThirdDose() || plan.Second.AmountMg != 240 {
		t.Errorf("plan = %+v, want third dose folded into second", plan)
	}

	saved, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if saved.SleepTime != "14:00" || saved.InstallID != "id-1" {
		t.Errorf("saved profile = %+v", saved)
	}
}

func TestSubmitRejectsInvalidValues(t *testing.T) {
	m := newTestModel(t, nil, false)
	m.formModel.Weight = "5"

	if err := m.submit(); err == nil {
		t.Error("submit() expected error for weight below form range")
	}
	if _, ok := m.Plan(); ok {
		t.Error("plan computed despite invalid input")
	}
}

func TestResultKeys(t *testing.T) {
	m := newTestModel(t, nil, false)
	if err := m.submit(); err != nil {
		t.Fatalf("submit() error = %v", err)
	}
	m.state = StateResult

	view := m.View()
	for _, want := range []string{"Caffeine Intake Calculator", "Daily caffeine limit: 400.00 mg", "Espresso (1 shot, 30ml): 63 mg"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	edited := updated.(Model)
	if edited.State() != StateForm {
		t.Fatalf("state after 'e' = %v, want StateForm", edited.State())
	}
	if edited.formModel.Weight != "70" {
		t.Errorf("re-edit form not pre-filled with last inputs: %+v", edited.formModel)
	}

	updated, _ = edited.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if back := updated.(Model); back.State() != StateResult {
		t.Errorf("state after esc = %v, want StateResult", back.State())
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !updated.(Model).quitting || cmd == nil {
		t.Error("'q' in result view should quit")
	}
	if updated.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestCtrlCQuitsFromForm(t *testing.T) {
	m := newTestModel(t, nil, false)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(Model).quitting || cmd == nil {
		t.Error("ctrl+c should quit from the form")
	}
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/koffee/internal/backup"
	"github.com/julianstephens/koffee/internal/beverages"
	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/planner"
	"github.com/julianstephens/koffee/internal/prompt"
	"github.com/julianstephens/koffee/internal/storage"
)

func newTestContext(t *testing.T, input string) (*Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Context{
		Err:       &bytes.Buffer{},
		Store:     storage.NewMemoryStore(),
		Planner:   planner.New(),
		Beverages: beverages.Default(),
		Loaded:    true,
		In:        strings.NewReader(input),
		Out:       out,
	}, out
}

func TestCalcCmdFlags(t *testing.T) {
	ctx, out := newTestContext(t, "")
	cmd := &CalcCmd{Weight: "70", Wake: "07:00", Sleep: "23:00", Sensitivity: "medium"}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Results:",
		"Daily caffeine limit: 400.00 mg",
		"First dose: 160.00 mg at 07:45",
		"Second dose: 120.00 mg at 12:00",
		"Third dose: 120.00 mg at 17:00",
		"Espresso (1 shot, 30ml): 63 mg",
		"Consult with a healthcare professional",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Optimal Caffeine Intake Calculator") {
		t.Error("banner should not be printed when every answer is given as a flag")
	}
}

func TestCalcCmdPrompts(t *testing.T) {
	ctx, out := newTestContext(t, "abc\n70\n7am\n07:00\n14:00\nextreme\nHigh\n")

	if err := (&CalcCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Optimal Caffeine Intake Calculator",
		prompt.WeightRetry,
		prompt.TimeRetry,
		prompt.SensitivityRetry,
		"Daily caffeine limit: 320.00 mg",
		"Second dose: 192.00 mg at 12:00",
		"Third dose: " + constants.NoThirdDoseRationale,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCalcCmdUsesStoredDefaults(t *testing.T) {
	ctx, out := newTestContext(t, "\n\n\n\n")
	if err := ctx.Store.SaveProfile(models.Profile{
		WeightKg:    50,
		WakeTime:    "06:30",
		SleepTime:   "22:00",
		Sensitivity: constants.SensitivityLow,
	}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	if err := (&CalcCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "[06:30]") {
		t.Errorf("expected stored wake time offered as default:\n%s", got)
	}
	if !strings.Contains(got, "First dose:") || !strings.Contains(got, "at 07:15") {
		t.Errorf("expected first dose 45 minutes after stored wake time:\n%s", got)
	}
}

func TestCalcCmdInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		cmd  CalcCmd
		want string
	}{
		{name: "weight", cmd: CalcCmd{Weight: "-1"}, want: "--weight"},
		{name: "wake", cmd: CalcCmd{Wake: "7:00"}, want: "--wake"},
		{name: "sleep", cmd: CalcCmd{Sleep: "24:00"}, want: "--sleep"},
		{name: "sensitivity", cmd: CalcCmd{Sensitivity: "extreme"}, want: "--sensitivity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t, "")
			err := tt.cmd.Run(ctx)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Run() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestCalcCmdInputClosed(t *testing.T) {
	ctx, _ := newTestContext(t, "70\n")
	err := (&CalcCmd{}).Run(ctx)
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}
}

func TestCalcCmdJSON(t *testing.T) {
	ctx, out := newTestContext(t, "")
	cmd := &CalcCmd{Weight: "70", Wake: "07:00", Sleep: "14:00", Sensitivity: "medium", JSON: true}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var plan models.DosePlan
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("output is not a JSON plan: %v\n%s", err, out.String())
	}
	if plan.DailyLimitMg != 400 || plan.Second.AmountMg != 240 || plan.HasThirdDose() {
		t.Errorf("unexpected plan: %+v", plan)
	}
}

func TestCalcCmdJSONPromptsOnErr(t *testing.T) {
	ctx, out := newTestContext(t, "70\n07:00\n14:00\nmedium\n")
	errBuf := &bytes.Buffer{}
	ctx.Err = errBuf

	if err := (&CalcCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var plan models.DosePlan
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("output is not a JSON plan: %v\n%s", err, out.String())
	}
	if plan.Second.AmountMg != 240 || plan.HasThirdDose() {
		t.Errorf("unexpected plan: %+v", plan)
	}
	if !strings.Contains(errBuf.String(), prompt.WeightQuestion) {
		t.Errorf("expected questions on the error stream, got %q", errBuf.String())
	}
}

func TestCalcCmdSaveInitializesStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "koffee.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() { store.Close() })
	if err := store.Load(); !storage.IsNotInitialized(err) {
		t.Fatalf("expected uninitialized store, got %v", err)
	}

	ctx, out := newTestContext(t, "")
	ctx.Store = store
	ctx.Loaded = false
	cmd := &CalcCmd{Weight: "82.5", Wake: "05:15", Sleep: "21:30", Sensitivity: "high", Save: true}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Profile saved.") {
		t.Errorf("expected save confirmation:\n%s", out.String())
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.WeightKg != 82.5 || profile.WakeTime != "05:15" || profile.SleepTime != "21:30" || profile.Sensitivity != constants.SensitivityHigh {
		t.Errorf("unexpected stored profile: %+v", profile)
	}
	if profile.InstallID == "" {
		t.Error("expected install ID to survive saving")
	}
}

func TestProfileCmd(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	seed := models.Profile{}
	models.ApplyDefaultProfile(&seed)
	if err := ctx.Store.SaveProfile(seed); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	weight := 90.0
	sensitivity := "LOW"
	if err := (&ProfileCmd{Weight: &weight, Sensitivity: &sensitivity}).Run(ctx); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	out.Reset()
	if err := (&ProfileCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"90 kg", "07:00", "23:00", "Low"} {
		if !strings.Contains(got, want) {
			t.Errorf("profile listing missing %q:\n%s", want, got)
		}
	}
}

func TestProfileCmdRejectsInvalidValues(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	seed := models.Profile{}
	models.ApplyDefaultProfile(&seed)
	if err := ctx.Store.SaveProfile(seed); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	wake := "25:00"
	if err := (&ProfileCmd{Wake: &wake}).Run(ctx); err == nil {
		t.Error("expected error for invalid wake time")
	}
	stored, _ := ctx.Store.GetProfile()
	if stored.WakeTime != constants.DefaultWakeTime {
		t.Errorf("invalid update was stored: %+v", stored)
	}
}

func TestProfileCmdRequiresInit(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	ctx.Loaded = false
	if err := (&ProfileCmd{List: true}).Run(ctx); err == nil {
		t.Error("expected error for uninitialized storage")
	}
}

func TestInitCmdForce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "koffee.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() { store.Close() })

	ctx, out := newTestContext(t, "")
	ctx.Store = store
	ctx.Loaded = false

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	first, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	second, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	if first.InstallID == second.InstallID {
		t.Error("expected a fresh install ID after forced init")
	}
	if !strings.Contains(out.String(), "Deleted existing database") {
		t.Errorf("expected deletion notice:\n%s", out.String())
	}

	snaps, err := backup.NewManager(dbPath).List()
	if err != nil {
		t.Fatalf("List backups failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("expected one backup before the reset, got %d", len(snaps))
	}
}

func TestInitCmdForceWithoutDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "koffee.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() { store.Close() })

	ctx, out := newTestContext(t, "")
	ctx.Store = store
	ctx.Loaded = false

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	if strings.Contains(out.String(), "Backed up") {
		t.Errorf("nothing to back up, got:\n%s", out.String())
	}
	if !ctx.Loaded {
		t.Error("expected context to be marked loaded after init")
	}
}

func TestBeveragesCmd(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&BeveragesCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected heading plus 7 beverages, got %d lines:\n%s", len(lines), out.String())
	}
	if lines[7] != "Energy Drink (240ml): 80 mg" {
		t.Errorf("unexpected last line %q", lines[7])
	}
}

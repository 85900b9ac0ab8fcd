package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/planner"
	"github.com/julianstephens/koffee/internal/storage"
)

type SessionState int

const (
	StateForm SessionState = iota
	StateResult
)

// Options configures a Model
type Options struct {
	Store       storage.Provider // may be nil; then nothing is pre-filled or saved
	Planner     *planner.Planner
	Beverages   []models.Beverage
	SaveProfile bool // store submitted inputs as the new profile
}

type Model struct {
	store       storage.Provider
	planner     *planner.Planner
	beverages   []models.Beverage
	saveProfile bool
	profile     models.Profile
	state       SessionState
	keys        KeyMap
	help        help.Model
	form        *huh.Form
	formModel   *FormModel
	viewport    viewport.Model
	plan        *models.DosePlan
	formError   string // Error message to display for form operations
	quitting    bool
	width       int
	height      int
}

func NewModel(opts Options) Model {
	p := opts.Planner
	if p == nil {
		p = planner.New()
	}

	var profile models.Profile
	if opts.Store != nil {
		var err error
		profile, err = opts.Store.GetProfile()
		if err != nil {
			logger.Debug("No stored profile, using defaults", "error", err)
			profile = models.Profile{}
		}
	}

	fm := NewFormModel(profile)
	return Model{
		store:       opts.Store,
		planner:     p,
		beverages:   opts.Beverages,
		saveProfile: opts.SaveProfile,
		profile:     profile,
		state:       StateForm,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		form:        NewInputForm(fm),
		formModel:   fm,
		viewport:    viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Plan returns the last computed plan, if any.
func (m Model) Plan() (models.DosePlan, bool) {
	if m.plan == nil {
		return models.DosePlan{}, false
	}
	return *m.plan, true
}

// State returns the current session state.
func (m Model) State() SessionState {
	return m.state
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/koffee/internal/logger"
)

// chrome is the number of lines taken by the title, padding and help line.
const chrome = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = max(msg.Width-4, 0)
		m.viewport.Height = max(msg.Height-chrome, 0)
		m.form = m.form.WithWidth(max(msg.Width-4, 0))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) && m.plan != nil {
		m.formError = ""
		m.state = StateResult
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submit(); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.state = StateResult
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submit() error {
	profile, err := m.formModel.Profile()
	if err != nil {
		return err
	}

	plan, err := m.planner.PlanProfile(profile)
	if err != nil {
		return err
	}
	m.plan = &plan
	m.viewport.SetContent(m.renderPlan())
	m.viewport.GotoTop()
	logger.Debug("Computed plan from form", "weight_kg", profile.WeightKg, "daily_limit_mg", plan.DailyLimitMg)

	if m.saveProfile && m.store != nil {
		profile.InstallID = m.profile.InstallID
		if err := m.store.SaveProfile(profile); err != nil {
			return err
		}
		m.profile = profile
	}
	return nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Edit):
			m.formModel = NewFormModel(m.currentInputs())
			m.form = NewInputForm(m.formModel).WithWidth(max(m.width-4, 0))
			m.state = StateForm
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

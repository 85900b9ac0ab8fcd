package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateForm:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, dangerStyle.Render(m.formError))
		}
	case StateResult:
		content = m.viewport.View()
	}

	parts := []string{titleStyle.Render("Caffeine Intake Calculator"), content}
	if m.state == StateResult {
		parts = append(parts, m.help.View(m.keys))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderPlan builds the read-only result text.
func (m Model) renderPlan() string {
	if m.plan == nil {
		return mutedStyle.Render("No plan computed yet.")
	}

	var b strings.Builder
	b.WriteString(limitStyle.Render(report.FormatLimit(*m.plan)))
	b.WriteString("\n\n")
	b.WriteString(report.FormatDoses(*m.plan))
	b.WriteString("\n")
	b.WriteString(report.FormatBeverages(m.beverages))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(report.Disclaimer))
	return b.String()
}

// currentInputs returns the last submitted inputs, used to pre-fill a re-edit.
func (m Model) currentInputs() models.Profile {
	if m.formModel == nil {
		return m.profile
	}
	profile, err := m.formModel.Profile()
	if err != nil {
		return models.Profile{Sensitivity: constants.DefaultSensitivity}
	}
	return profile
}

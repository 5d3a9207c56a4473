package tui

import (
	"fmt"
	"strings"

	"runpace/internal/vdot"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Training paces"},
		{"2", "Race predictions"},
		{"3", "Races"},
		{"4", "Strava import"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Paces and Predictions", []keyHelp{
		{"j/k", "Scroll"},
		{"r", "Refresh"},
	}))

	sections = append(sections, m.renderSection("Races", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"a", "Add a race result"},
		{"d", "Delete selected race (y to confirm)"},
		{"tab", "Next field in the add form"},
		{"esc", "Cancel the add form"},
	}))

	sections = append(sections, m.renderSection("Strava Import", []keyHelp{
		{"s / enter", "Start import"},
		{"esc", "Cancel a running import"},
	}))

	sections = append(sections, m.renderTermsHelp())
	sections = append(sections, m.renderModelHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Terms Explained"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"VDOT", "Effective VO2max implied by a race result (ml/kg/min)."},
		{"%VO2max", "Share of VDOT a training zone is run at."},
		{"Easy / Marathon / Threshold", "59%, 75% and 83% of VDOT."},
		{"Interval / Repetition", "97% and 106% of VDOT."},
		{"Distances", "Type 5k, 10k, half, marathon, mile, 10 mi, 8km or 3000m."},
		{"Times", "Type 18:22 or 1:02:03."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+helpDescStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderModelHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Daniels/Gilbert Model"))
	lines = append(lines, "")

	for _, eq := range modelEquations() {
		lines = append(lines, "  "+helpDescStyle.Render(eq))
	}

	return strings.Join(lines, "\n")
}

// modelEquations renders the regression formulas with their coefficients
// (v in m/min, t in minutes)
func modelEquations() []string {
	cost, intensity, velocity := vdot.Coefficients()
	return []string{
		fmt.Sprintf("VO2 cost   = %g·v² + %g·v %+g", cost.A, cost.B, cost.C),
		fmt.Sprintf("%%VO2max    = %g·e^(%g·t) + %g·e^(%g·t) + %g",
			intensity.P1, intensity.K1, intensity.P2, intensity.K2, intensity.P0),
		fmt.Sprintf("velocity   = %g·vo2² + %g·vo2 %+g", velocity.A, velocity.B, velocity.C),
		"VDOT       = VO2 cost / %VO2max",
	}
}

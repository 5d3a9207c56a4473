package tui

import (
	"fmt"
	"strings"

	"runpace/internal/service"
	"runpace/internal/units"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PacesModel is the training paces screen model
type PacesModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.PacesData
	viewport     viewport.Model
	loading      bool
	err          error
	ready        bool
}

// NewPacesModel creates a new paces model
func NewPacesModel(qs *service.QueryService, units Units, width, height int) PacesModel {
	m := PacesModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the paces screen
func (m PacesModel) Init() tea.Cmd {
	return m.loadPaces
}

type pacesLoadedMsg struct {
	data *service.PacesData
	err  error
}

func (m PacesModel) loadPaces() tea.Msg {
	data, err := m.queryService.GetTrainingPaces()
	return pacesLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m PacesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pacesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.viewport, m.ready = resizeViewport(m.viewport, m.ready, msg)
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadPaces
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the paces screen
func (m PacesModel) View() string {
	if m.loading {
		return "\n  Loading training paces..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m PacesModel) renderContent() string {
	if m.data == nil || !m.data.HasPaces {
		return renderEmpty("Training Paces",
			"No VDOT available yet.",
			"Add a race on the Races screen (3, then a), import races from Strava,",
			"or set training.vdot in the config file.")
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Training Paces"))
	sections = append(sections, "")
	sections = append(sections, renderFitness(m.data.Fitness))
	sections = append(sections, m.renderPacesTable())
	sections = append(sections, m.renderZoneNotes())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PacesModel) renderPacesTable() string {
	var lines []string

	lines = append(lines, sectionHeader("Target Paces"))

	header := fmt.Sprintf("  %-12s  %7s  %10s  %10s  %10s  %8s",
		"Zone", "%VO2max", m.units.PaceLabel(), "per km", "per mile", "400m")
	lines = append(lines, columnHeaderStyle.Render(header))

	for _, p := range m.data.Paces {
		lines = append(lines, fmt.Sprintf("  %-12s  %6.0f%%  %10s  %10s  %10s  %8s",
			p.Name,
			p.Fraction*100,
			metricValueStyle.Render(m.units.FormatPace(p.Speed)),
			units.FormatDuration(p.PerKm),
			units.FormatDuration(p.PerMile),
			formatRepeat(p.Per400m.Seconds()),
		))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m PacesModel) renderZoneNotes() string {
	var lines []string

	lines = append(lines, sectionHeader("What Each Zone Is For"))
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)
	for _, p := range m.data.Paces {
		lines = append(lines, fmt.Sprintf("  %s %s", helpKeyStyle.Width(12).Render(p.Name), mutedStyle.Render(p.Description)))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// formatRepeat renders a track repeat time, with tenths under two minutes
func formatRepeat(seconds float64) string {
	if seconds < 120 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	return fmt.Sprintf("%d:%02d", int(seconds)/60, int(seconds)%60)
}

// renderFitness shows the VDOT in use and where it came from
func renderFitness(f *service.Fitness) string {
	if f == nil {
		return ""
	}

	vdotStyle := lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	labelStyle := lipgloss.NewStyle().Foreground(secondaryColor)
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		fmt.Sprintf("  VDOT: %s (%s)", vdotStyle.Render(f.VDOT.String()), labelStyle.Render(f.Label)),
		mutedStyle.Render("  Based on: " + f.SourceDescription),
		"",
	}
	return strings.Join(lines, "\n")
}

// resizeViewport creates or resizes a screen viewport, leaving room for chrome
func resizeViewport(vp viewport.Model, ready bool, msg tea.WindowSizeMsg) (viewport.Model, bool) {
	if !ready {
		return viewport.New(msg.Width, msg.Height-6), true
	}
	vp.Width = msg.Width
	vp.Height = msg.Height - 6
	return vp, true
}

func sectionHeader(title string) string {
	const width = 60
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(secondaryColor)
	rule := width - len(title) - 4
	if rule < 3 {
		rule = 3
	}
	return headerStyle.Render(fmt.Sprintf("── %s %s", title, strings.Repeat("─", rule)))
}

func renderEmpty(title string, lines ...string) string {
	out := []string{"", cardTitleStyle.Render(title), ""}
	emptyStyle := lipgloss.NewStyle().Foreground(mutedColor)
	for _, l := range lines {
		out = append(out, emptyStyle.Render("  "+l))
	}
	out = append(out, "")
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

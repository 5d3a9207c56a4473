package tui

import (
	"fmt"
	"strings"

	"runpace/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PredictionsModel is the race predictions screen model
type PredictionsModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.PredictionsData
	viewport     viewport.Model
	loading      bool
	err          error
	ready        bool
}

// NewPredictionsModel creates a new predictions model
func NewPredictionsModel(qs *service.QueryService, units Units, width, height int) PredictionsModel {
	m := PredictionsModel{
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

// Init initializes the predictions screen
func (m PredictionsModel) Init() tea.Cmd {
	return m.loadPredictions
}

type predictionsLoadedMsg struct {
	data *service.PredictionsData
	err  error
}

func (m PredictionsModel) loadPredictions() tea.Msg {
	data, err := m.queryService.GetRacePredictions()
	return predictionsLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m PredictionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionsLoadedMsg:
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
			return m, m.loadPredictions
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the predictions screen
func (m PredictionsModel) View() string {
	if m.loading {
		return "\n  Loading race predictions..."
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

func (m PredictionsModel) renderContent() string {
	if m.data == nil || !m.data.HasPredictions {
		return renderEmpty("Race Time Predictions",
			"No race predictions available yet.",
			"Predictions need a race from the last year or a VDOT set in the config.",
			"Add a race on the Races screen or sync with Strava.")
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Race Time Predictions"))
	sections = append(sections, "")
	sections = append(sections, m.renderVDOTInfo())
	sections = append(sections, m.renderPredictionsTable())
	sections = append(sections, m.renderAboutSection())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PredictionsModel) renderVDOTInfo() string {
	var lines []string

	vdotStyle := lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	labelStyle := lipgloss.NewStyle().Foreground(secondaryColor)

	lines = append(lines, fmt.Sprintf("  VDOT: %s (%s)",
		vdotStyle.Render(fmt.Sprintf("%.1f", m.data.VDOT)),
		labelStyle.Render(m.data.VDOTLabel),
	))

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)
	source := "  Based on: " + m.data.SourceName
	if m.data.SourceTime != "" {
		source += fmt.Sprintf(" - %s (%s)", m.data.SourceTime, m.data.SourceDate)
	}
	lines = append(lines, mutedStyle.Render(source))
	lines = append(lines, mutedStyle.Render("  Computed: "+m.data.LastUpdated))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m PredictionsModel) renderPredictionsTable() string {
	var lines []string

	lines = append(lines, sectionHeader("Predicted Times"))

	header := fmt.Sprintf("  %-15s  %12s  %10s  %s", "Distance", "Predicted", "Pace", "Confidence")
	lines = append(lines, columnHeaderStyle.Render(header))

	for _, pred := range m.data.Predictions {
		lines = append(lines, m.formatPredictionRow(pred))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m PredictionsModel) formatPredictionRow(pred service.PredictionDisplay) string {
	return fmt.Sprintf("  %-15s  %12s  %10s  %s",
		pred.TargetLabel,
		pred.PredictedTime,
		m.units.FormatPaceWithUnit(pred.Speed),
		confidenceStyle(pred.Confidence).Render(pred.Confidence),
	)
}

func (m PredictionsModel) renderAboutSection() string {
	var lines []string

	lines = append(lines, sectionHeader("About These Predictions"))

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)
	lines = append(lines, mutedStyle.Render("  Predictions use Jack Daniels' VDOT model (Daniels & Gilbert)."))
	lines = append(lines, mutedStyle.Render("  Confidence reflects race recency and distance extrapolation."))
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Render("  Confidence Levels:"))
	lines = append(lines, fmt.Sprintf("    %s - Recent race, minimal extrapolation", confidenceStyle("High").Render("High")))
	lines = append(lines, fmt.Sprintf("    %s - Moderate extrapolation, older race or configured VDOT", confidenceStyle("Medium").Render("Medium")))
	lines = append(lines, fmt.Sprintf("    %s - Large extrapolation (e.g., 5K to marathon)", confidenceStyle("Low").Render("Low")))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

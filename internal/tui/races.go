package tui

import (
	"fmt"
	"strings"
	"time"

	"runpace/internal/service"
	"runpace/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RacesModel is the race results screen model
type RacesModel struct {
	queryService *service.QueryService
	raceService  *service.RaceService
	units        Units
	data         *service.RacesData
	cursor       int
	form         RaceFormModel
	adding       bool
	confirming   bool
	status       string
	loading      bool
	err          error
	width        int
}

// NewRacesModel creates a new races model
func NewRacesModel(qs *service.QueryService, rs *service.RaceService, units Units, width int) RacesModel {
	return RacesModel{
		queryService: qs,
		raceService:  rs,
		units:        units,
		loading:      true,
		width:        width,
	}
}

// Init initializes the races screen
func (m RacesModel) Init() tea.Cmd {
	return m.loadRaces
}

// Capturing reports whether the screen is taking text input or waiting on a
// delete confirmation, in which case global key bindings must not fire
func (m RacesModel) Capturing() bool {
	return m.adding || m.confirming
}

// RacesChangedMsg is sent after a race is added or deleted
type RacesChangedMsg struct{}

type racesLoadedMsg struct {
	data *service.RacesData
	err  error
}

type raceSavedMsg struct {
	race *store.Race
	err  error
}

type raceDeletedMsg struct {
	name string
	err  error
}

func (m RacesModel) loadRaces() tea.Msg {
	data, err := m.queryService.GetRaces()
	return racesLoadedMsg{data: data, err: err}
}

func racesChanged() tea.Msg {
	return RacesChangedMsg{}
}

// Update handles messages
func (m RacesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case racesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.data != nil && m.cursor >= len(m.data.Races) {
			m.cursor = max(len(m.data.Races)-1, 0)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case raceFormCancelledMsg:
		m.adding = false
		return m, nil

	case raceFormSubmittedMsg:
		in := msg.input
		rs := m.raceService
		return m, func() tea.Msg {
			race, err := rs.AddRace(in.name, in.distance, in.elapsed, in.racedAt)
			return raceSavedMsg{race: race, err: err}
		}

	case raceSavedMsg:
		if msg.err != nil && msg.race == nil {
			// Keep the form open so the entry can be fixed
			m.form.err = msg.err
			return m, nil
		}
		m.adding = false
		m.cursor = 0
		m.status = fmt.Sprintf("Added %s: VDOT %.1f", msg.race.Name, msg.race.VDOT)
		if msg.err != nil {
			m.status += fmt.Sprintf(" (predictions not updated: %v)", msg.err)
		}
		return m, tea.Batch(m.loadRaces, racesChanged)

	case raceDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Deleted " + msg.name
		return m, tea.Batch(m.loadRaces, racesChanged)
	}

	if m.adding {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		m.confirming = false
		if key.String() == "y" {
			return m, m.deleteSelected()
		}
		m.status = ""
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.data != nil && m.cursor < len(m.data.Races)-1 {
			m.cursor++
		}
	case "a":
		m.adding = true
		m.status = ""
		m.form = NewRaceFormModel(time.Now())
		return m, m.form.Init()
	case "d", "delete":
		if race, ok := m.selected(); ok {
			m.confirming = true
			m.status = fmt.Sprintf("Delete %s (%s)? y to confirm", race.Name, race.Date)
		}
	case "r":
		m.loading = true
		return m, m.loadRaces
	}

	return m, nil
}

func (m RacesModel) selected() (service.RaceDisplay, bool) {
	if m.data == nil || m.cursor >= len(m.data.Races) {
		return service.RaceDisplay{}, false
	}
	return m.data.Races[m.cursor], true
}

func (m RacesModel) deleteSelected() tea.Cmd {
	race, ok := m.selected()
	if !ok {
		return nil
	}
	rs := m.raceService
	return func() tea.Msg {
		return raceDeletedMsg{name: race.Name, err: rs.DeleteRace(race.ID)}
	}
}

// View renders the races screen
func (m RacesModel) View() string {
	if m.adding {
		return m.form.View()
	}

	if m.loading {
		return "\n  Loading races..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var sections []string

	if m.data == nil || len(m.data.Races) == 0 {
		sections = append(sections, renderEmpty("Races",
			"No races recorded yet.",
			"Press 'a' to add a race result, or sync races tagged on Strava."))
	} else {
		sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Races (%d)", len(m.data.Races))))
		sections = append(sections, RenderMetric("Best VDOT", fmt.Sprintf("%.1f", m.data.BestVDOT), ""))
		sections = append(sections, "")
		sections = append(sections, m.renderTable())
		sections = append(sections, m.renderChart())
	}

	if m.status != "" {
		style := successStyle
		if m.confirming {
			style = warningStyle
		}
		sections = append(sections, style.Render("  "+m.status))
	}

	sections = append(sections, statusStyle.Render("  a: add  d: delete  j/k: navigate  r: refresh"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RacesModel) renderTable() string {
	var rows []string

	header := fmt.Sprintf("   %-12s  %-24s  %-13s  %9s  %10s  %5s  %s",
		"Date", "Name", "Distance", "Time", "Pace", "VDOT", "")
	rows = append(rows, columnHeaderStyle.Render(header))

	for i, r := range m.data.Races {
		distance := r.DistanceLabel
		if distance == "" {
			distance = m.units.FormatDistance(r.Distance)
		}

		source := ""
		if r.Source == store.SourceStrava {
			source = "strava"
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-12s  %-24s  %-13s  %9s  %10s  %5.1f  %s",
			cursor,
			r.Date,
			truncateName(r.Name, 24),
			distance,
			r.Time,
			m.units.FormatPaceWithUnit(r.Speed),
			r.VDOT,
			source,
		)

		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(row))
		} else {
			rows = append(rows, tableRowStyle.Render(row))
		}
	}

	return strings.Join(rows, "\n")
}

func (m RacesModel) renderChart() string {
	history := m.data.VDOTHistory
	if len(history) < 2 {
		return ""
	}

	width := 50
	if m.width > 0 && m.width-20 < width {
		width = max(m.width-20, 10)
	}

	chart := asciigraph.Plot(history,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("VDOT by race, oldest to newest"),
	)

	return "\n" + sectionHeader("VDOT Trend") + "\n" + chart + "\n"
}

// truncateName shortens a name to fit a column
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-3]) + "..."
}

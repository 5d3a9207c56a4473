package tui

import (
	"fmt"
	"strings"
	"time"

	"runpace/internal/units"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// Form fields, in tab order
const (
	fieldName = iota
	fieldDistance
	fieldTime
	fieldDate
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Distance", "Time", "Date"}

// RaceFormModel collects a race result typed in by hand
type RaceFormModel struct {
	inputs []textinput.Model
	focus  int
	err    error
}

// raceInput is a validated form submission
type raceInput struct {
	name     string
	distance units.Distance
	elapsed  time.Duration
	racedAt  time.Time
}

type raceFormSubmittedMsg struct{ input raceInput }

type raceFormCancelledMsg struct{}

// NewRaceFormModel creates an empty form dated today
func NewRaceFormModel(today time.Time) RaceFormModel {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := [fieldCount]string{"Parkrun", "5k, 10 mi, half, 42195m", "18:22 or 1:02:03", dateLayout}
	limits := [fieldCount]int{60, 20, 12, 10}

	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		inputs[i] = ti
	}
	inputs[fieldDate].SetValue(today.Format(dateLayout))
	inputs[fieldName].Focus()

	return RaceFormModel{inputs: inputs}
}

// Init starts the cursor blinking
func (m RaceFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m RaceFormModel) Update(msg tea.Msg) (RaceFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return raceFormCancelledMsg{} }
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1)
			}
			input, err := parseRaceForm(
				m.inputs[fieldName].Value(),
				m.inputs[fieldDistance].Value(),
				m.inputs[fieldTime].Value(),
				m.inputs[fieldDate].Value(),
				time.Local,
			)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			return m, func() tea.Msg { return raceFormSubmittedMsg{input: input} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m RaceFormModel) setFocus(i int) (RaceFormModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[m.focus].Focus()
}

// View renders the form
func (m RaceFormModel) View() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Add Race"))

	for i, in := range m.inputs {
		label := formLabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = formFocusedLabelStyle.Render(fieldLabels[i])
		}
		lines = append(lines, "  "+lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()))
	}

	if m.err != nil {
		lines = append(lines, "", errorStyle.Render("  "+m.err.Error()))
	}

	lines = append(lines, statusStyle.Render("  tab/arrows: move  enter: next / save  esc: cancel"))
	return strings.Join(lines, "\n")
}

// parseRaceForm validates raw form values. An empty date means today.
func parseRaceForm(name, distance, elapsed, date string, loc *time.Location) (raceInput, error) {
	d, err := units.ParseDistance(distance)
	if err != nil {
		return raceInput{}, fmt.Errorf("distance: %w", err)
	}

	t, err := units.ParseDuration(elapsed)
	if err != nil {
		return raceInput{}, fmt.Errorf("time: %w", err)
	}

	racedAt := time.Now().In(loc)
	if date = strings.TrimSpace(date); date != "" {
		racedAt, err = time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return raceInput{}, fmt.Errorf("date: want YYYY-MM-DD, got %q", date)
		}
	}

	return raceInput{
		name:     strings.TrimSpace(name),
		distance: d,
		elapsed:  t,
		racedAt:  racedAt,
	}, nil
}

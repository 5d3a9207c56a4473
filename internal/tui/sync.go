package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"runpace/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the Strava race import screen model
type SyncModel struct {
	syncService *service.SyncService // nil when Strava is not configured
	syncing     bool
	progress    <-chan service.SyncProgress
	last        service.SyncProgress
	cancel      context.CancelFunc
	result      *service.SyncResult
	err         error
	done        bool
}

// NewSyncModel creates a new sync model
func NewSyncModel(ss *service.SyncService) SyncModel {
	return SyncModel{
		syncService: ss,
	}
}

// Init initializes the sync screen
func (m SyncModel) Init() tea.Cmd {
	return nil
}

// SyncDoneMsg is sent when sync finishes
type SyncDoneMsg struct {
	Result *service.SyncResult
	Err    error
}

type syncProgressMsg service.SyncProgress

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncProgressMsg:
		m.last = service.SyncProgress(msg)
		return m, waitForProgress(m.progress)

	case SyncDoneMsg:
		m.syncing = false
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, func() tea.Msg { return SyncCompleteMsg{} }

	case tea.KeyMsg:
		if m.syncService == nil {
			return m, nil
		}
		switch msg.String() {
		case "enter", "s":
			if !m.syncing {
				return m.start()
			}
		case "esc", "x":
			if m.syncing && m.cancel != nil {
				m.cancel()
			}
		}
	}
	return m, nil
}

func (m SyncModel) start() (SyncModel, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	progress := make(chan service.SyncProgress, 16)

	m.syncing = true
	m.done = false
	m.err = nil
	m.result = nil
	m.last = service.SyncProgress{}
	m.cancel = cancel
	m.progress = progress

	ss := m.syncService
	run := func() tea.Msg {
		result, err := ss.ImportRaces(ctx, progress)
		return SyncDoneMsg{Result: result, Err: err}
	}

	return m, tea.Batch(run, waitForProgress(progress))
}

// waitForProgress delivers the next progress report as a message.
// It returns nil once the channel is closed.
func waitForProgress(ch <-chan service.SyncProgress) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return syncProgressMsg(p)
	}
}

// View renders the sync screen
func (m SyncModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Strava Race Import"))

	if m.syncService == nil {
		sections = append(sections, m.renderNotConfigured())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.err != nil {
		msg := fmt.Sprintf("\n  Error: %v", m.err)
		if errors.Is(m.err, context.Canceled) {
			msg = "\n  Import cancelled."
		}
		sections = append(sections, errorStyle.Render(msg))
		sections = append(sections, m.renderSummary())
		sections = append(sections, "\n"+statusStyle.Render("  Press 's' or Enter to retry"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.done && !m.syncing {
		sections = append(sections, successStyle.Render("\n  Import complete!"))
		sections = append(sections, m.renderSummary())
		sections = append(sections, "\n"+statusStyle.Render("  Press '3' to see your races"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.syncing {
		sections = append(sections, m.renderProgress())
	} else {
		sections = append(sections, m.renderStartPrompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SyncModel) renderNotConfigured() string {
	lines := []string{
		"",
		"  Strava is not configured.",
		"",
		"  Add strava.client_id and strava.client_secret to the config file",
		"  to import runs you tagged as races.",
		"  Create an API application at https://www.strava.com/settings/api",
	}
	return strings.Join(lines, "\n")
}

func (m SyncModel) renderStartPrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  This will import your races from Strava:")
	lines = append(lines, "")
	lines = append(lines, "  1. Fetch activities since the last import")
	lines = append(lines, "  2. Store runs tagged as a Race and score their VDOT")
	lines = append(lines, "  3. Recompute race predictions")
	lines = append(lines, "")

	short, daily := m.syncService.RateLimitStatus()
	lines = append(lines, statusStyle.Render(fmt.Sprintf("  API requests left: %d (15min), %d (daily)", short, daily)))
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Press 's' or Enter to start"))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderProgress() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  Importing from Strava...")
	lines = append(lines, "")

	p := m.last
	switch p.Phase {
	case service.PhaseActivities:
		lines = append(lines, fmt.Sprintf("  Fetching activities: %d so far", p.Completed))
	case service.PhaseRaces:
		pct := 0.0
		if p.Total > 0 {
			pct = float64(p.Completed) / float64(p.Total)
		}
		lines = append(lines, fmt.Sprintf("  Scoring races: %d/%d", p.Completed, p.Total))
		lines = append(lines, "  "+RenderProgressBar(pct, 40))
		if p.CurrentRace != "" {
			lines = append(lines, statusStyle.Render("  "+truncateName(p.CurrentRace, 50)))
		}
	case service.PhasePredictions:
		lines = append(lines, "  Recomputing predictions...")
	default:
		lines = append(lines, "  Starting...")
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  esc: cancel"))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderSummary() string {
	if m.result == nil {
		return ""
	}

	var lines []string
	r := m.result
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render(fmt.Sprintf("  %d activities checked, %d tagged as races", r.ActivitiesFetched, r.RacesFound)))

	if r.RacesImported > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d new races imported", r.RacesImported)))
	} else {
		lines = append(lines, statusStyle.Render("  No new races"))
	}

	if r.RacesUpdated > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d races updated", r.RacesUpdated)))
	}

	if len(r.Errors) > 0 {
		lines = append(lines, "")
		lines = append(lines, warningStyle.Render(fmt.Sprintf("  %d races skipped:", len(r.Errors))))
		for i, err := range r.Errors {
			if i == 3 {
				lines = append(lines, warningStyle.Render(fmt.Sprintf("    ... and %d more (see log)", len(r.Errors)-3)))
				break
			}
			lines = append(lines, warningStyle.Render("    "+err.Error()))
		}
	}

	return strings.Join(lines, "\n")
}

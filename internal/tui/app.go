package tui

import (
	"runpace/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenPaces Screen = iota
	ScreenPredictions
	ScreenRaces
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	paces       PacesModel
	predictions PredictionsModel
	races       RacesModel
	syncScreen  SyncModel
	help        HelpModel

	// Services
	queryService *service.QueryService
	raceService  *service.RaceService
	syncService  *service.SyncService

	units Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies. syncService may be nil
// when Strava is not configured.
func NewApp(queryService *service.QueryService, raceService *service.RaceService, syncService *service.SyncService, units Units) *App {
	return &App{
		screen:       ScreenPaces,
		queryService: queryService,
		raceService:  raceService,
		syncService:  syncService,
		units:        units,
		paces:        NewPacesModel(queryService, units, 0, 0),
		predictions:  NewPredictionsModel(queryService, units, 0, 0),
		races:        NewRacesModel(queryService, raceService, units, 0),
		syncScreen:   NewSyncModel(syncService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.paces.Init()
}

// inputLocked reports whether keys belong to the current screen only
func (a *App) inputLocked() bool {
	return (a.screen == ScreenSync && a.syncScreen.syncing) ||
		(a.screen == ScreenRaces && a.races.Capturing())
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.inputLocked() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenPaces
				a.paces = NewPacesModel(a.queryService, a.units, a.width, a.height)
				return a, a.paces.Init()
			case "2":
				a.screen = ScreenPredictions
				a.predictions = NewPredictionsModel(a.queryService, a.units, a.width, a.height)
				return a, a.predictions.Init()
			case "3":
				a.screen = ScreenRaces
				return a, a.races.Init()
			case "4":
				a.screen = ScreenSync
				return a, a.syncScreen.Init()
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every screen keeps its own layout, so all of them see resizes
		return a, a.broadcast(msg)

	case SyncDoneMsg:
		// Finish the sync even if the user navigated away meanwhile
		m, cmd := a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
		return a, cmd

	case syncProgressMsg:
		m, cmd := a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
		return a, cmd

	case SyncCompleteMsg, RacesChangedMsg:
		// Predictions and paces depend on the stored races
		a.paces = NewPacesModel(a.queryService, a.units, a.width, a.height)
		a.predictions = NewPredictionsModel(a.queryService, a.units, a.width, a.height)
		if _, ok := msg.(SyncCompleteMsg); ok {
			return a, tea.Batch(a.paces.Init(), a.predictions.Init(), a.races.Init())
		}
		return a, tea.Batch(a.paces.Init(), a.predictions.Init())

	case pacesLoadedMsg:
		m, cmd := a.paces.Update(msg)
		a.paces = m.(PacesModel)
		return a, cmd

	case predictionsLoadedMsg:
		m, cmd := a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
		return a, cmd

	case racesLoadedMsg, raceSavedMsg, raceDeletedMsg:
		m, cmd := a.races.Update(msg)
		a.races = m.(RacesModel)
		return a, cmd
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent delegates a message to the visible screen
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var m tea.Model

	switch a.screen {
	case ScreenPaces:
		m, cmd = a.paces.Update(msg)
		a.paces = m.(PacesModel)
	case ScreenPredictions:
		m, cmd = a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
	case ScreenRaces:
		m, cmd = a.races.Update(msg)
		a.races = m.(RacesModel)
	case ScreenSync:
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return cmd
}

func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var m tea.Model
	var cmd tea.Cmd

	m, cmd = a.paces.Update(msg)
	a.paces = m.(PacesModel)
	cmds = append(cmds, cmd)

	m, cmd = a.predictions.Update(msg)
	a.predictions = m.(PredictionsModel)
	cmds = append(cmds, cmd)

	m, cmd = a.races.Update(msg)
	a.races = m.(RacesModel)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenPaces:
		content = a.paces.View()
	case ScreenPredictions:
		content = a.predictions.View()
	case ScreenRaces:
		content = a.races.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("runpace - VDOT Training Paces & Race Predictions")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Paces", ScreenPaces},
		{"2", "Predictions", ScreenPredictions},
		{"3", "Races", ScreenRaces},
		{"4", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if item.screen == ScreenSync && a.syncService == nil {
			label += " (off)"
		}

		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// SyncCompleteMsg is sent when sync finishes
type SyncCompleteMsg struct{}

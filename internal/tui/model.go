package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/tui/components/day"
	"github.com/julianstephens/salat/internal/tui/components/now"
	"github.com/julianstephens/salat/internal/tui/components/stats"
)

type SessionState int

const (
	StateNow SessionState = iota
	StateDay
	StateStats
	StateKaza
	StateKazaForm
)

// tabCount covers the states reachable with tab; the rest are overlays.
const tabCount = 4

var tabTitles = [tabCount]string{"Now", "Day", "Stats", "Kaza"}

type KazaFormModel struct {
	Slot    models.PrayerSlot
	Count   string
	Start   string
	Confirm bool
}

type Model struct {
	ctx       *cli.Context
	settings  models.Settings
	loc       *time.Location
	state     SessionState
	keys      KeyMap
	help      help.Model
	nowModel  now.Model
	dayModel  day.Model
	statsView stats.Model
	form      *huh.Form
	kazaForm  *KazaFormModel
	kaza      *cli.KazaResult
	kazaSlot  models.PrayerSlot
	message   string
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:       ctx,
		state:     StateNow,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		statsView: stats.New(0, 0),
		loc:       time.Local,
	}

	settings, err := ctx.Settings()
	if err != nil {
		m.err = err
		settings = models.DefaultSettings()
	}
	m.settings = settings

	t, err := ctx.Now(settings)
	if err != nil {
		m.err = err
		t = time.Now()
	} else {
		m.loc = t.Location()
	}

	m.nowModel = now.New(t)
	m.dayModel = day.New(m.nowModel.Date)
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateNow:
		keys = append(keys, m.keys.Done, m.keys.Open)
	case StateDay:
		keys = append(keys, m.keys.Enter, m.keys.MarkAll, m.keys.Left, m.keys.Right)
	case StateKaza:
		keys = append(keys, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "record kaza")))
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Today}

	var actions []key.Binding
	switch m.state {
	case StateNow:
		actions = []key.Binding{m.keys.Done, m.keys.Open}
	case StateDay:
		actions = []key.Binding{m.keys.Enter, m.keys.MarkAll}
	case StateKaza:
		actions = []key.Binding{m.keys.Enter}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		now.Tick(),
		m.fetchBoundaries(m.nowModel.Date),
		m.loadDay(m.nowModel.Date),
		m.loadStats(),
	)
}

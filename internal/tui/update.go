package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/tui/components/now"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateKazaForm {
		switch msg.(type) {
		case now.TickMsg, boundariesMsg, dayLoadedMsg, statsLoadedMsg, statusWrittenMsg, kazaDoneMsg, tea.WindowSizeMsg:
		default:
			return m.updateKazaForm(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// tabs, status line and help
		contentHeight := msg.Height - 4
		m.nowModel.SetSize(msg.Width, contentHeight)
		m.dayModel.SetSize(msg.Width, contentHeight)
		m.statsView.SetSize(msg.Width, contentHeight)

	case now.TickMsg:
		cmds := []tea.Cmd{now.Tick()}
		if m.nowModel.SetTime(time.Time(msg).In(m.loc)) {
			date := m.nowModel.Date
			cmds = append(cmds, m.fetchBoundaries(date), m.loadDay(date), m.loadStats())
		}
		return m, tea.Batch(cmds...)

	case boundariesMsg:
		if msg.date != m.nowModel.Date {
			return m, nil
		}
		if msg.err != nil {
			logger.Warn("failed to load prayer times", "date", msg.date, "error", msg.err)
			m.nowModel.SetError(msg.err)
			return m, nil
		}
		m.nowModel.SetBoundaries(msg.day.Boundaries)

	case dayLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.date == m.nowModel.Date {
			m.nowModel.SetStatuses(msg.view.Statuses)
		}
		m.dayModel.SetView(msg.view)

	case statsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statsView.SetSummary(msg.summary)

	case statusWrittenMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m, tea.Batch(m.loadDay(msg.date), m.loadStats())

	case kazaDoneMsg:
		m.kaza = &msg.result
		m.kazaSlot = msg.slot
		m.err = msg.err
		m.message = ""
		cmds := []tea.Cmd{m.loadDay(m.nowModel.Date), m.loadStats()}
		if m.dayModel.Date != m.nowModel.Date {
			cmds = append(cmds, m.loadDay(m.dayModel.Date))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	}

	switch m.state {
	case StateNow:
		w := m.nowModel.Window()
		if w.Loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Done):
			return m, m.writeStatus(m.nowModel.Date, w.Current, models.StatusDone)
		case key.Matches(msg, m.keys.Open):
			return m, m.writeStatus(m.nowModel.Date, w.Current, models.StatusOpen)
		}

	case StateDay:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.dayModel.Up()
		case key.Matches(msg, m.keys.Down):
			m.dayModel.Down()
		case key.Matches(msg, m.keys.Enter):
			if !m.dayModel.Loaded() {
				return m, nil
			}
			return m, m.writeStatus(m.dayModel.Date, m.dayModel.Selected(), m.dayModel.SelectedStatus().Toggle())
		case key.Matches(msg, m.keys.MarkAll):
			return m, m.writeAll(m.dayModel.Date, models.StatusDone)
		case key.Matches(msg, m.keys.Left):
			return m.shiftDay(-1)
		case key.Matches(msg, m.keys.Right):
			return m.shiftDay(1)
		case key.Matches(msg, m.keys.Today):
			m.dayModel.SetDate(m.nowModel.Date)
			return m, m.loadDay(m.nowModel.Date)
		}

	case StateKaza:
		if key.Matches(msg, m.keys.Enter) {
			m.form, m.kazaForm = newKazaForm()
			m.state = StateKazaForm
			m.message = ""
			m.err = nil
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m Model) shiftDay(n int) (tea.Model, tea.Cmd) {
	date, err := models.AddDays(m.dayModel.Date, n)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.dayModel.SetDate(date)
	return m, m.loadDay(date)
}

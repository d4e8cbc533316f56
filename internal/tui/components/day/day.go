package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salat/internal/ledger"
	"github.com/julianstephens/salat/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(14)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type Model struct {
	Date   string
	view   ledger.DayView
	loaded bool
	cursor int
	width  int
	height int
}

func New(date string) Model {
	return Model{Date: date}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetDate switches to another day; the view is empty until SetView.
func (m *Model) SetDate(date string) {
	if date != m.Date {
		m.Date = date
		m.loaded = false
	}
}

func (m *Model) SetView(v ledger.DayView) {
	if v.Date != m.Date {
		return
	}
	m.view = v
	m.loaded = true
}

func (m Model) Loaded() bool {
	return m.loaded
}

func (m *Model) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) Down() {
	if m.cursor < models.SlotCount-1 {
		m.cursor++
	}
}

func (m Model) Selected() models.PrayerSlot {
	return models.Slots[m.cursor]
}

// SelectedStatus is Open until the day has been loaded.
func (m Model) SelectedStatus() models.Status {
	if !m.loaded {
		return models.StatusOpen
	}
	return m.view.Statuses[m.cursor]
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("← %s →", m.Date)))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(faintStyle.Render("Loading..."))
		return b.String()
	}

	for i, slot := range models.Slots {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		status := m.view.Statuses[slot]
		mark := openStyle.Render("✗ " + status.Label())
		if status == models.StatusDone {
			mark = doneStyle.Render("✓ " + status.Label())
		}
		b.WriteString(cursor + slotStyle.Render(slot.DisplayName()) + mark + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d/%d performed", m.view.Done(), models.SlotCount))
	if !m.view.Seeded {
		b.WriteString("\n" + faintStyle.Render("Nothing recorded for this day yet."))
	}
	return b.String()
}

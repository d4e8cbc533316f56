package now

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salat/internal/constants"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/resolver"
	"github.com/julianstephens/salat/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	notReadyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

type Model struct {
	Time       time.Time
	Date       string
	boundaries models.DailyBoundaries
	statuses   [models.SlotCount]models.Status
	window     resolver.Window
	err        error
	width      int
	height     int
}

func New(t time.Time) Model {
	m := Model{
		Time:       t,
		Date:       utils.FormatDate(t),
		boundaries: models.NewBoundaries(),
	}
	for i := range m.statuses {
		m.statuses[i] = models.StatusOpen
	}
	m.resolve()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

type TickMsg time.Time

func Tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SetTime moves the clock. It reports whether the calendar date changed,
// in which case the boundaries are reset until the new day is fetched.
func (m *Model) SetTime(t time.Time) bool {
	m.Time = t
	date := utils.FormatDate(t)
	changed := date != m.Date
	if changed {
		m.Date = date
		m.boundaries = models.NewBoundaries()
		m.err = nil
		for i := range m.statuses {
			m.statuses[i] = models.StatusOpen
		}
	}
	m.resolve()
	return changed
}

func (m *Model) SetBoundaries(b models.DailyBoundaries) {
	m.boundaries = b
	m.err = nil
	m.resolve()
}

// SetError marks the data as not ready.
func (m *Model) SetError(err error) {
	m.err = err
}

func (m *Model) SetStatuses(statuses [models.SlotCount]models.Status) {
	m.statuses = statuses
}

func (m Model) Window() resolver.Window {
	return m.window
}

func (m Model) Boundaries() models.DailyBoundaries {
	return m.boundaries
}

func (m *Model) resolve() {
	m.window = resolver.Resolve(m.boundaries, utils.SecondOfDay(m.Time))
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Now: %s", m.Time.Format("15:04:05")))

	var content string
	switch {
	case m.err != nil:
		content = lipgloss.JoinVertical(lipgloss.Center,
			notReadyStyle.Render("Prayer times not ready."),
			timeStyle.Render(m.err.Error()),
		)
	case m.window.Loading:
		content = timeStyle.Render("Loading...")
	default:
		w := m.window
		status := m.statuses[w.Current]
		statusText := openStyle.Render("✗ " + status.Label())
		if status == models.StatusDone {
			statusText = doneStyle.Render("✓ " + status.Label())
		}
		content = lipgloss.JoinVertical(lipgloss.Center,
			timeStyle.Render(fmt.Sprintf("since %s", resolver.FormatClock(w.CurrentBoundary))),
			slotStyle.Render(w.Current.DisplayName()),
			statusText,
			"",
			timeStyle.Render(fmt.Sprintf("Next: %s at %s (in %s)",
				w.Next.DisplayName(), resolver.FormatClock(w.NextBoundary), resolver.FormatDuration(w.Remaining))),
		)
	}

	content = lipgloss.JoinVertical(lipgloss.Center, title, content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

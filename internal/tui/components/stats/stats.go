package stats

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

const (
	minChartWidth  = 30
	minChartHeight = 8
)

type Model struct {
	chart   barchart.Model
	summary stats.Summary
	loaded  bool
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{chart: barchart.New(minChartWidth, minChartHeight), width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.loaded {
		m.draw()
	}
}

func (m *Model) SetSummary(s stats.Summary) {
	m.summary = s
	m.loaded = true
	m.draw()
}

func (m Model) Summary() stats.Summary {
	return m.summary
}

func (m *Model) draw() {
	w := max(m.width-4, minChartWidth)
	h := max(m.height-8, minChartHeight)
	m.chart = barchart.New(w, h)

	bars := make([]barchart.BarData, 0, models.SlotCount)
	for _, slot := range models.Slots {
		bars = append(bars, barchart.BarData{
			Label: slot.DisplayName(),
			Values: []barchart.BarValue{
				{Name: "done", Value: float64(m.summary.Done.Get(slot)), Style: doneStyle},
				{Name: "open", Value: float64(m.summary.Open.Get(slot)), Style: openStyle},
			},
		})
	}
	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m Model) View() string {
	if !m.loaded {
		return faintStyle.Render("Loading...")
	}

	r := m.summary.Range
	p := m.summary.Progress()
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Statistics %s to %s", r.From, r.To)),
		m.chart.View(),
		"",
		fmt.Sprintf("%s %s   %s %s",
			doneStyle.Render("█ performed"), fmt.Sprint(m.summary.Done.Total()),
			openStyle.Render("█ not performed"), fmt.Sprint(m.summary.Open.Total())),
		fmt.Sprintf("Progress: %s", p.String()),
		stats.ProgressMessage(p),
	)
}

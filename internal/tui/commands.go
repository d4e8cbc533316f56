package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/ledger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/stats"
	"github.com/julianstephens/salat/internal/timings"
)

type boundariesMsg struct {
	date string
	day  timings.Day
	err  error
}

type dayLoadedMsg struct {
	date string
	view ledger.DayView
	err  error
}

type statsLoadedMsg struct {
	summary stats.Summary
	err     error
}

type statusWrittenMsg struct {
	date string
	err  error
}

type kazaDoneMsg struct {
	slot   models.PrayerSlot
	result cli.KazaResult
	err    error
}

func (m Model) fetchBoundaries(date string) tea.Cmd {
	ctx, settings := m.ctx, m.settings
	return func() tea.Msg {
		d, err := ctx.FetchDay(date, settings)
		return boundariesMsg{date: date, day: d, err: err}
	}
}

func (m Model) loadDay(date string) tea.Cmd {
	l := m.ctx.Ledger()
	return func() tea.Msg {
		v, err := l.Day(date)
		return dayLoadedMsg{date: date, view: v, err: err}
	}
}

func (m Model) loadStats() tea.Cmd {
	ctx, settings, today := m.ctx, m.settings, m.nowModel.Date
	return func() tea.Msg {
		r, err := ctx.ResolveRange("", today, settings)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		s, err := stats.NewAggregator(ctx.Store).Summarize(r)
		return statsLoadedMsg{summary: s, err: err}
	}
}

func (m Model) writeStatus(date string, slot models.PrayerSlot, status models.Status) tea.Cmd {
	l := m.ctx.Ledger()
	return func() tea.Msg {
		return statusWrittenMsg{date: date, err: l.Upsert(date, slot, status)}
	}
}

func (m Model) writeAll(date string, status models.Status) tea.Cmd {
	l := m.ctx.Ledger()
	return func() tea.Msg {
		return statusWrittenMsg{date: date, err: l.UpsertAll(date, status)}
	}
}

func (m Model) runKaza(slot models.PrayerSlot, count int, start string) tea.Cmd {
	ctx, today := m.ctx, m.nowModel.Date
	return func() tea.Msg {
		res, err := ctx.Kaza(slot, count, start, today)
		return kazaDoneMsg{slot: slot, result: res, err: err}
	}
}

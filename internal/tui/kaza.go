package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/salat/internal/models"
)

const maxKazaDates = 10

func newKazaForm() (*huh.Form, *KazaFormModel) {
	f := &KazaFormModel{Slot: models.Morning, Count: "1", Confirm: true}

	opts := make([]huh.Option[models.PrayerSlot], 0, models.SlotCount)
	for _, s := range models.Slots {
		opts = append(opts, huh.NewOption(s.DisplayName(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.PrayerSlot]().
				Title("Prayer").
				Options(opts...).
				Value(&f.Slot),
			huh.NewInput().
				Title("Count").
				Value(&f.Count).
				Validate(validateCount),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD; leave empty to start at the oldest open entry").
				Value(&f.Start).
				Validate(validateStart),
			huh.NewConfirm().
				Title("Record these make-up prayers?").
				Affirmative("Run").
				Negative("Cancel").
				Value(&f.Confirm),
		),
	)
	return form, f
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateStart(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := models.ParseDate(s)
	return err
}

func (m Model) updateKazaForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateKaza
		m.message = "Kaza cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var run tea.Cmd
		m, run = m.finishKazaForm()
		return m, tea.Batch(cmd, run)
	case huh.StateAborted:
		m.state = StateKaza
		m.message = "Kaza cancelled."
	}
	return m, cmd
}

// finishKazaForm turns a completed form into a backfill run.
func (m Model) finishKazaForm() (Model, tea.Cmd) {
	m.state = StateKaza
	f := m.kazaForm
	if f == nil || !f.Confirm {
		m.message = "Kaza cancelled."
		return m, nil
	}
	if err := validateCount(f.Count); err != nil {
		m.err = err
		return m, nil
	}
	if err := validateStart(f.Start); err != nil {
		m.err = err
		return m, nil
	}
	count, _ := strconv.Atoi(strings.TrimSpace(f.Count))
	m.message = fmt.Sprintf("Recording %d %s prayers...", count, f.Slot.DisplayName())
	return m, m.runKaza(f.Slot, count, strings.TrimSpace(f.Start))
}

func (m Model) viewKaza() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kaza"))
	b.WriteString("\n")

	if m.kaza == nil {
		b.WriteString("Press enter to record make-up prayers.")
		return b.String()
	}

	res := m.kaza
	if res.Clamped {
		b.WriteString(fmt.Sprintf("Only %d open %s prayers between %s and %s.\n",
			res.Outstanding, m.kazaSlot.DisplayName(), res.Range.From, res.Range.To))
	}
	if len(res.Dates) == 0 {
		b.WriteString("No open prayers found.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Marked %d %s prayers as performed:\n", len(res.Dates), m.kazaSlot.DisplayName()))
	for i, d := range res.Dates {
		if i == maxKazaDates {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.Dates)-maxKazaDates))
			break
		}
		b.WriteString("  " + d + "\n")
	}
	b.WriteString("\nPress enter to record more.")
	return b.String()
}

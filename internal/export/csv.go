// Package export writes ledger entries as CSV or JSON.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/salat/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q (want csv or json)", s)
}

var csvHeader = []string{"ID", "Date", "Prayer", "Status", "Created", "Updated"}

func WriteCSV(w io.Writer, entries []models.LedgerEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.Date,
			e.Slot.String(),
			string(e.Status),
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes entries to path in the given format.
func ToFile(path string, format Format, entries []models.LedgerEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s file: %w", format, err)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = WriteJSON(f, entries)
	default:
		err = WriteCSV(f, entries)
	}
	if err != nil {
		return err
	}
	return f.Sync()
}

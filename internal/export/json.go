package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/salat/internal/models"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Prayer    string `json:"prayer"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func WriteJSON(w io.Writer, entries []models.LedgerEntry) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
		Entries:    make([]jsonEntry, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, jsonEntry{
			ID:        e.ID,
			Date:      e.Date,
			Prayer:    e.Slot.String(),
			Status:    string(e.Status),
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

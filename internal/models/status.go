package models

import (
	"strings"

	apperrors "github.com/julianstephens/salat/internal/errors"
)

// Status of a ledger entry. Open is the default for anything never marked.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

var statusAliases = map[string]Status{
	"open":             StatusOpen,
	"offen":            StatusOpen,
	"not performed":    StatusOpen,
	"nicht verrichtet": StatusOpen,
	"done":             StatusDone,
	"erledigt":         StatusDone,
	"performed":        StatusDone,
	"verrichtet":       StatusDone,
}

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusDone
}

// Label is the human readable form shown in tables.
func (s Status) Label() string {
	switch s {
	case StatusDone:
		return "performed"
	case StatusOpen:
		return "not performed"
	}
	return string(s)
}

// Toggle flips Open and Done.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusOpen
	}
	return StatusDone
}

// ParseStatus accepts the storage values and the display vocabulary.
func ParseStatus(value string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return st, nil
	}
	return "", apperrors.NewParseError("status", value, nil)
}

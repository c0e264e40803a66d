package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies an entry for balance aggregation.
type EntryType string

const (
	TypeIncome  EntryType = "INCOME"
	TypeExpense EntryType = "EXPENSE"
)

// EntryStatus is the lifecycle state of an entry.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusConfirmed EntryStatus = "CONFIRMED"
	StatusCancelled EntryStatus = "CANCELLED"
)

// Enum parse errors.
var (
	ErrUnknownEntryType   = errors.New("unknown entry type")
	ErrUnknownEntryStatus = errors.New("unknown entry status")
)

// IsValid checks if the entry type is a known value.
func (t EntryType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// IsValid checks if the entry status is a known value.
func (s EntryStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// ParseEntryType converts a caller-supplied string into an EntryType.
// Unknown strings fail with ErrUnknownEntryType instead of producing a
// zero value.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryType, s)
	}
	return t, nil
}

// ParseEntryStatus converts a caller-supplied string into an EntryStatus.
func ParseEntryStatus(s string) (EntryStatus, error) {
	st := EntryStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryStatus, s)
	}
	return st, nil
}

// Entry represents a single dated financial record (a "lançamento")
// belonging to one user.
//
// Zero values mean "unset": an Entry arriving from the HTTP layer with no
// month carries Month == 0, which the service rejects during validation.
// RegisteredAt is populated by the store at insert time.
type Entry struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Value        decimal.Decimal `json:"value"`
	UserID       int64           `json:"user_id"`
	Type         EntryType       `json:"type"`
	Status       EntryStatus     `json:"status"`
	RegisteredAt time.Time       `json:"registered_at"`
}

// EntryFilter is an explicit filter-criteria structure for searching
// entries. A nil field leaves that column unconstrained. Description
// matches case-insensitively by substring; every other field matches by
// equality.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	UserID      *int64
	Type        *EntryType
	Status      *EntryStatus
}

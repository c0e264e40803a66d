package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/metrics"
	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// EntryStore is the persistence contract the entry service consumes.
//
// SaveEntry inserts when the entry has no identity and updates otherwise,
// returning the persisted entry with store-populated fields. FindEntryByID
// returns (nil, nil) when no entry matches: absence is a normal outcome,
// not a failure. SumEntriesByUserAndType returns an invalid NullDecimal
// when the user has no entries of that type.
type EntryStore interface {
	SaveEntry(ctx context.Context, entry *model.Entry) (*model.Entry, error)
	DeleteEntry(ctx context.Context, entry *model.Entry) error
	FindEntryByID(ctx context.Context, id int64) (*model.Entry, error)
	FindEntries(ctx context.Context, filter model.EntryFilter) ([]*model.Entry, error)
	SumEntriesByUserAndType(ctx context.Context, userID int64, entryType model.EntryType) (decimal.NullDecimal, error)
}

// EntryService handles financial entry business rules: validation, status
// lifecycle, search, and balance aggregation.
type EntryService struct {
	store   EntryStore
	metrics metrics.Recorder
}

// NewEntryService creates a new EntryService.
func NewEntryService(store EntryStore, recorder metrics.Recorder) *EntryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EntryService{
		store:   store,
		metrics: recorder,
	}
}

// Create validates the entry, forces its status to PENDING regardless of
// caller input, and persists it. Returns the persisted entry with the
// assigned identity and registration date.
func (s *EntryService) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	entry.Status = model.StatusPending

	saved, err := s.store.SaveEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.metrics.IncEntryCreated()

	return saved, nil
}

// FindByID returns the entry with the given identity, or nil if no entry
// matches. Absence is not an error at this layer.
func (s *EntryService) FindByID(ctx context.Context, id int64) (*model.Entry, error) {
	return s.store.FindEntryByID(ctx, id)
}

// Update re-validates the entry and persists it. The entry must already
// carry an identity; calling Update without one is a caller bug and
// panics with a ContractViolationError before any store access.
func (s *EntryService) Update(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	requireID(entry, "update entry")

	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	saved, err := s.store.SaveEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.metrics.IncEntryUpdated()

	return saved, nil
}

// Delete removes the entry. Same identity contract as Update. The store
// reports no error if the row is already gone.
func (s *EntryService) Delete(ctx context.Context, entry *model.Entry) error {
	requireID(entry, "delete entry")

	if err := s.store.DeleteEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.metrics.IncEntryDeleted()

	return nil
}

// Search returns all entries matching the filter. Unset filter fields are
// unconstrained; ordering is the store's natural order.
func (s *EntryService) Search(ctx context.Context, filter model.EntryFilter) ([]*model.Entry, error) {
	entries, err := s.store.FindEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

// UpdateStatus re-validates the entry, overwrites its status, and persists
// it via the update path, so the identity contract propagates. The mutated
// entry reference carries the new state.
func (s *EntryService) UpdateStatus(ctx context.Context, entry *model.Entry, status model.EntryStatus) error {
	if err := s.Validate(entry); err != nil {
		return err
	}

	entry.Status = status

	if _, err := s.Update(ctx, entry); err != nil {
		return err
	}

	s.metrics.IncEntryStatusChanged()

	return nil
}

// Balance computes sum(INCOME) - sum(EXPENSE) for a user. A sum query with
// no matching rows yields an absent value, coerced to zero before the
// subtraction.
func (s *EntryService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveBalanceDuration(time.Since(start))
	}()

	income, err := s.store.SumEntriesByUserAndType(ctx, userID, model.TypeIncome)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income: %w", err)
	}

	expense, err := s.store.SumEntriesByUserAndType(ctx, userID, model.TypeExpense)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	if !income.Valid {
		income.Decimal = decimal.Zero
	}
	if !expense.Valid {
		expense.Decimal = decimal.Zero
	}

	return income.Decimal.Sub(expense.Decimal), nil
}

// Validate checks the entry invariants in a fixed order and returns the
// first violation: description, month, year, user, value, type. Status is
// deliberately not checked; it is set by the save and status-transition
// operations.
func (s *EntryService) Validate(entry *model.Entry) error {
	if strings.TrimSpace(entry.Description) == "" {
		return ErrInvalidDescription
	}

	if entry.Month < 1 || entry.Month > 12 {
		return ErrInvalidMonth
	}

	// Textual-length check, not a numeric range: the year rendered as
	// decimal digits must be exactly 4 characters. Legacy-compatible.
	if len(strconv.Itoa(entry.Year)) != 4 {
		return ErrInvalidYear
	}

	if entry.UserID == 0 {
		return ErrMissingUser
	}

	if entry.Value.Sign() <= 0 {
		return ErrInvalidValue
	}

	if entry.Type == "" {
		return ErrInvalidType
	}

	return nil
}

// requireID panics with a ContractViolationError when the entry carries no
// persisted identity. Callers are expected to resolve the entry first;
// hitting this is a programming error, not bad user input.
func requireID(entry *model.Entry, op string) {
	if entry.ID == 0 {
		panic(&ContractViolationError{Op: op})
	}
}

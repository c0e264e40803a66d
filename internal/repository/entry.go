package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// Monetary values travel as text between Go and Postgres: pgx has no
// native shopspring codec, and NUMERIC round-trips losslessly through its
// textual form.

// SaveEntry inserts the entry when it has no identity and updates it
// otherwise, returning the persisted row with store-populated fields.
func (r *Repository) SaveEntry(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	if entry.ID == 0 {
		return r.insertEntry(ctx, entry)
	}
	return r.updateEntry(ctx, entry)
}

func (r *Repository) insertEntry(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	query := `
		INSERT INTO entries (description, month, year, value, user_id, type, status)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		RETURNING id, registered_at
	`

	saved := *entry
	err := r.pool.QueryRow(ctx, query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Value.String(),
		entry.UserID,
		string(entry.Type),
		string(entry.Status),
	).Scan(&saved.ID, &saved.RegisteredAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	return &saved, nil
}

func (r *Repository) updateEntry(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	query := `
		UPDATE entries
		SET description = $2, month = $3, year = $4, value = $5::numeric,
		    user_id = $6, type = $7, status = $8
		WHERE id = $1
		RETURNING registered_at
	`

	saved := *entry
	err := r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Value.String(),
		entry.UserID,
		string(entry.Type),
		string(entry.Status),
	).Scan(&saved.RegisteredAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to update entry %d: row is gone", entry.ID)
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &saved, nil
}

// DeleteEntry removes the entry. Deleting a row that is already gone is
// not an error.
func (r *Repository) DeleteEntry(ctx context.Context, entry *model.Entry) error {
	query := `DELETE FROM entries WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

// FindEntryByID retrieves an entry by identity.
// Returns (nil, nil) when no entry matches.
func (r *Repository) FindEntryByID(ctx context.Context, id int64) (*model.Entry, error) {
	query := `
		SELECT id, description, month, year, value::text, user_id, type, status, registered_at
		FROM entries
		WHERE id = $1
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry by ID: %w", err)
	}

	return entry, nil
}

// FindEntries retrieves all entries matching the filter. Unset filter
// fields leave their column unconstrained; the description matches
// case-insensitively by substring, everything else by equality.
func (r *Repository) FindEntries(ctx context.Context, filter model.EntryFilter) ([]*model.Entry, error) {
	query := `
		SELECT id, description, month, year, value::text, user_id, type, status, registered_at
		FROM entries
		WHERE 1=1
	`
	var args []any
	argIndex := 1

	if filter.Description != nil {
		query += fmt.Sprintf(" AND description ILIKE '%%' || $%d || '%%'", argIndex)
		args = append(args, *filter.Description)
		argIndex++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND month = $%d", argIndex)
		args = append(args, *filter.Month)
		argIndex++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argIndex)
		args = append(args, *filter.Year)
		argIndex++
	}

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, string(*filter.Type))
		argIndex++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, string(*filter.Status))
		argIndex++
	}

	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// SumEntriesByUserAndType aggregates entry values for a user and type.
// Returns an invalid NullDecimal when the user has no matching entries.
func (r *Repository) SumEntriesByUserAndType(ctx context.Context, userID int64, entryType model.EntryType) (decimal.NullDecimal, error) {
	query := `
		SELECT SUM(value)::text
		FROM entries
		WHERE user_id = $1 AND type = $2
	`

	var sum *string
	err := r.pool.QueryRow(ctx, query, userID, string(entryType)).Scan(&sum)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("failed to sum entries: %w", err)
	}

	if sum == nil {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(*sum)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("failed to parse sum %q: %w", *sum, err)
	}

	return decimal.NewNullDecimal(value), nil
}

// scanEntry scans a single row into an Entry model.
func scanEntry(row pgx.Row) (*model.Entry, error) {
	var (
		entry model.Entry
		value string
	)

	err := row.Scan(
		&entry.ID,
		&entry.Description,
		&entry.Month,
		&entry.Year,
		&value,
		&entry.UserID,
		&entry.Type,
		&entry.Status,
		&entry.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Value, err = decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse entry value %q: %w", value, err)
	}

	return &entry, nil
}

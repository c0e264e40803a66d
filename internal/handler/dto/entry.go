package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// SaveEntryRequest is the request body for creating and updating entries.
// Type and Status arrive as strings and go through an explicit parse step;
// unknown values are rejected, never silently zeroed.
type SaveEntryRequest struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Value       decimal.Decimal `json:"value"`
	UserID      int64           `json:"user_id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
}

// UpdateStatusRequest is the request body for PUT /api/v1/entries/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// EntryResponse is the entry shape returned by the API.
type EntryResponse struct {
	ID           int64             `json:"id"`
	Description  string            `json:"description"`
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	Value        decimal.Decimal   `json:"value"`
	UserID       int64             `json:"user_id"`
	Type         model.EntryType   `json:"type"`
	Status       model.EntryStatus `json:"status"`
	RegisteredAt time.Time         `json:"registered_at"`
}

// ToEntryResponse converts a domain entry to its API shape.
func ToEntryResponse(entry *model.Entry) EntryResponse {
	return EntryResponse{
		ID:           entry.ID,
		Description:  entry.Description,
		Month:        entry.Month,
		Year:         entry.Year,
		Value:        entry.Value,
		UserID:       entry.UserID,
		Type:         entry.Type,
		Status:       entry.Status,
		RegisteredAt: entry.RegisteredAt,
	}
}

// ToEntryListResponse converts a slice of domain entries.
func ToEntryListResponse(entries []*model.Entry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ToEntryResponse(entry))
	}
	return result
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/handler/dto"
	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

func seedUser(store *stubUserStore) *model.User {
	return store.add(&model.User{
		Name:     "Wendel",
		Email:    "wendel@email.com",
		Password: "senha123",
	})
}

func seedEntry(t *testing.T, store *stubEntryStore, userID int64) *model.Entry {
	t.Helper()

	entry, err := store.SaveEntry(context.Background(), &model.Entry{
		Description: "Salário",
		Month:       3,
		Year:        2024,
		Value:       decimal.NewFromInt(2500),
		UserID:      userID,
		Type:        model.TypeIncome,
		Status:      model.StatusPending,
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return entry
}

func TestEntryHandler_Create(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	router := newTestRouter(entryStore, userStore)

	body := fmt.Sprintf(`{
		"description": "Aluguel",
		"month": 5,
		"year": 2024,
		"value": "1200.00",
		"user_id": %d,
		"type": "EXPENSE",
		"status": "CONFIRMED"
	}`, user.ID)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/entries", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[dto.EntryResponse](t, rec)
	if resp.ID == 0 {
		t.Error("expected assigned id")
	}
	// The caller asked for CONFIRMED; creation always starts at PENDING.
	if resp.Status != model.StatusPending {
		t.Errorf("expected status PENDING, got %s", resp.Status)
	}
	if !resp.Value.Equal(decimal.RequireFromString("1200.00")) {
		t.Errorf("unexpected value: %s", resp.Value)
	}
}

func TestEntryHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "blank description",
			body:        `{"description": "  ", "month": 5, "year": 2024, "value": "100", "user_id": 1, "type": "EXPENSE"}`,
			wantMessage: "Informe uma descrição válida!",
		},
		{
			name:        "month out of range",
			body:        `{"description": "Aluguel", "month": 13, "year": 2024, "value": "100", "user_id": 1, "type": "EXPENSE"}`,
			wantMessage: "Informe um mês válido!",
		},
		{
			name:        "three digit year",
			body:        `{"description": "Aluguel", "month": 5, "year": 999, "value": "100", "user_id": 1, "type": "EXPENSE"}`,
			wantMessage: "Informe um ano válido!",
		},
		{
			name:        "missing user",
			body:        `{"description": "Aluguel", "month": 5, "year": 2024, "value": "100", "type": "EXPENSE"}`,
			wantMessage: "Informe um usuário!",
		},
		{
			name:        "zero value",
			body:        `{"description": "Aluguel", "month": 5, "year": 2024, "value": "0", "user_id": 1, "type": "EXPENSE"}`,
			wantMessage: "Informe um valor válido!",
		},
		{
			name:        "missing type",
			body:        `{"description": "Aluguel", "month": 5, "year": 2024, "value": "100", "user_id": 1}`,
			wantMessage: "Informe um tipo válido!",
		},
		{
			name:        "unknown type",
			body:        `{"description": "Aluguel", "month": 5, "year": 2024, "value": "100", "user_id": 1, "type": "TRANSFER"}`,
			wantMessage: "Informe um tipo válido!",
		},
		{
			name:        "unknown user id",
			body:        `{"description": "Aluguel", "month": 5, "year": 2024, "value": "100", "user_id": 99, "type": "EXPENSE"}`,
			wantMessage: "Usuário não encontrado para o id informado!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryStore := newStubEntryStore()
			userStore := newStubUserStore()
			seedUser(userStore)
			router := newTestRouter(entryStore, userStore)

			rec := doRequest(t, router, http.MethodPost, "/api/v1/entries", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
			}

			resp := decodeBody[dto.ErrorResponse](t, rec)
			if resp.Error != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, resp.Error)
			}

			if len(entryStore.entries) != 0 {
				t.Error("invalid request must not reach the store")
			}
		})
	}
}

func TestEntryHandler_Get(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	entry := seedEntry(t, entryStore, user.ID)
	router := newTestRouter(entryStore, userStore)

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/entries/%d", entry.ID), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeBody[dto.EntryResponse](t, rec)
	if resp.ID != entry.ID {
		t.Errorf("expected id %d, got %d", entry.ID, resp.ID)
	}
	if resp.Description != "Salário" {
		t.Errorf("unexpected description: %s", resp.Description)
	}
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	router := newTestRouter(newStubEntryStore(), newStubUserStore())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/entries/42", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	resp := decodeBody[dto.ErrorResponse](t, rec)
	if resp.Error != "Lançamento não encontrado na base de dados!" {
		t.Errorf("unexpected message: %s", resp.Error)
	}
}

func TestEntryHandler_Update(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	entry := seedEntry(t, entryStore, user.ID)
	router := newTestRouter(entryStore, userStore)

	body := fmt.Sprintf(`{
		"description": "Salário atualizado",
		"month": 4,
		"year": 2024,
		"value": "2800.00",
		"user_id": %d,
		"type": "INCOME"
	}`, user.ID)

	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/entries/%d", entry.ID), body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[dto.EntryResponse](t, rec)
	if resp.ID != entry.ID {
		t.Errorf("expected id %d, got %d", entry.ID, resp.ID)
	}
	if resp.Description != "Salário atualizado" {
		t.Errorf("unexpected description: %s", resp.Description)
	}
	// Body omitted status, so the stored status is kept.
	if resp.Status != model.StatusPending {
		t.Errorf("expected status PENDING, got %s", resp.Status)
	}
}

func TestEntryHandler_Update_NotFound(t *testing.T) {
	userStore := newStubUserStore()
	user := seedUser(userStore)
	router := newTestRouter(newStubEntryStore(), userStore)

	body := fmt.Sprintf(`{"description": "x", "month": 1, "year": 2024, "value": "1", "user_id": %d, "type": "INCOME"}`, user.ID)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/entries/42", body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestEntryHandler_UpdateStatus(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	entry := seedEntry(t, entryStore, user.ID)
	router := newTestRouter(entryStore, userStore)

	rec := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/v1/entries/%d/status", entry.ID),
		`{"status": "CONFIRMED"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[dto.EntryResponse](t, rec)
	if resp.Status != model.StatusConfirmed {
		t.Errorf("expected status CONFIRMED, got %s", resp.Status)
	}

	stored := entryStore.entries[entry.ID]
	if stored.Status != model.StatusConfirmed {
		t.Errorf("expected stored status CONFIRMED, got %s", stored.Status)
	}
}

func TestEntryHandler_UpdateStatus_Invalid(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	entry := seedEntry(t, entryStore, user.ID)
	router := newTestRouter(entryStore, userStore)

	rec := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/v1/entries/%d/status", entry.ID),
		`{"status": "DONE"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	resp := decodeBody[dto.ErrorResponse](t, rec)
	if resp.Error != "Não foi possível realizar a requisição. Envie um status válido!" {
		t.Errorf("unexpected message: %s", resp.Error)
	}
}

func TestEntryHandler_Delete(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	entry := seedEntry(t, entryStore, user.ID)
	router := newTestRouter(entryStore, userStore)

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/entries/%d", entry.ID), "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	if _, ok := entryStore.entries[entry.ID]; ok {
		t.Error("expected entry removed from store")
	}

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/entries/%d", entry.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on second delete, got %d", rec.Code)
	}
}

func TestEntryHandler_Search(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)
	seedEntry(t, entryStore, user.ID)

	if _, err := entryStore.SaveEntry(context.Background(), &model.Entry{
		Description: "Mercado",
		Month:       3,
		Year:        2024,
		Value:       decimal.NewFromInt(480),
		UserID:      user.ID,
		Type:        model.TypeExpense,
		Status:      model.StatusConfirmed,
	}); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	router := newTestRouter(entryStore, userStore)

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{"all for user", fmt.Sprintf("/api/v1/entries?user_id=%d", user.ID), 2},
		{"by type", fmt.Sprintf("/api/v1/entries?user_id=%d&type=EXPENSE", user.ID), 1},
		{"by status", fmt.Sprintf("/api/v1/entries?user_id=%d&status=PENDING", user.ID), 1},
		{"description is case insensitive", fmt.Sprintf("/api/v1/entries?user_id=%d&description=mercado", user.ID), 1},
		{"no match", fmt.Sprintf("/api/v1/entries?user_id=%d&year=2020", user.ID), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
			}

			resp := decodeBody[[]dto.EntryResponse](t, rec)
			if len(resp) != tt.wantCount {
				t.Errorf("expected %d entries, got %d", tt.wantCount, len(resp))
			}
		})
	}
}

func TestEntryHandler_Search_RequiresValidUser(t *testing.T) {
	router := newTestRouter(newStubEntryStore(), newStubUserStore())

	tests := []struct {
		name   string
		target string
	}{
		{"missing user_id", "/api/v1/entries"},
		{"unknown user", "/api/v1/entries?user_id=99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}

			resp := decodeBody[dto.ErrorResponse](t, rec)
			if resp.Error != "Não foi possível realizar a consulta. Usuário inválido!" {
				t.Errorf("unexpected message: %s", resp.Error)
			}
		})
	}
}

func TestEntryHandler_Balance(t *testing.T) {
	entryStore := newStubEntryStore()
	userStore := newStubUserStore()
	user := seedUser(userStore)

	entryStore.sums[model.TypeIncome] = decimal.NewNullDecimal(decimal.RequireFromString("1000.00"))
	entryStore.sums[model.TypeExpense] = decimal.NewNullDecimal(decimal.RequireFromString("300.00"))

	router := newTestRouter(entryStore, userStore)

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/balance", user.ID), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[dto.BalanceResponse](t, rec)
	if resp.UserID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, resp.UserID)
	}
	if !resp.Balance.Equal(decimal.RequireFromString("700.00")) {
		t.Errorf("expected balance 700.00, got %s", resp.Balance)
	}
}

func TestEntryHandler_Balance_UnknownUser(t *testing.T) {
	router := newTestRouter(newStubEntryStore(), newStubUserStore())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/99/balance", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

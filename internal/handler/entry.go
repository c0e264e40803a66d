package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wendelDmesquita/minhas-financas-api/internal/handler/dto"
	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
	"github.com/wendelDmesquita/minhas-financas-api/internal/service"
)

// Messages surfaced by the entry endpoints, kept verbatim from the legacy
// system.
const (
	msgEntryNotFound     = "Lançamento não encontrado na base de dados!"
	msgEntryUserNotFound = "Usuário não encontrado para o id informado!"
	msgInvalidStatus     = "Não foi possível realizar a requisição. Envie um status válido!"
	msgSearchBadUser     = "Não foi possível realizar a consulta. Usuário inválido!"
)

// EntryHandler handles HTTP requests for financial entry operations.
type EntryHandler struct {
	svc     *service.EntryService
	userSvc *service.UserService
	logger  *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(svc *service.EntryService, userSvc *service.UserService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		svc:     svc,
		userSvc: userSvc,
		logger:  logger,
	}
}

// Create handles POST /api/v1/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	entry, ok := h.convert(w, r, req)
	if !ok {
		return
	}

	saved, err := h.svc.Create(r.Context(), entry)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_created",
		"entry_id", saved.ID,
		"user_id", saved.UserID,
		"type", saved.Type,
	)

	writeJSON(w, http.StatusCreated, dto.ToEntryResponse(saved))
}

// Get handles GET /api/v1/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", msgEntryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(entry))
}

// Search handles GET /api/v1/entries. The user_id parameter is required
// and must reference an existing user; every other parameter is optional
// and unconstrained when absent.
func (h *EntryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawUserID := query.Get("user_id")
	if rawUserID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_USER_ID", msgSearchBadUser)
		return
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_USER_ID", msgSearchBadUser)
		return
	}

	user, err := h.userSvc.FindByID(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusBadRequest, "INVALID_USER_ID", msgSearchBadUser)
		return
	}

	filter := model.EntryFilter{UserID: &userID}

	if desc := query.Get("description"); desc != "" {
		filter.Description = &desc
	}
	if raw := query.Get("month"); raw != "" {
		if month, err := strconv.Atoi(raw); err == nil {
			filter.Month = &month
		}
	}
	if raw := query.Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.Year = &year
		}
	}
	if raw := query.Get("type"); raw != "" {
		entryType, err := model.ParseEntryType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "Informe um tipo válido!")
			return
		}
		filter.Type = &entryType
	}
	if raw := query.Get("status"); raw != "" {
		status, err := model.ParseEntryStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	entries, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryListResponse(entries))
}

// Update handles PUT /api/v1/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	existing, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", msgEntryNotFound)
		return
	}

	var req dto.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	entry, ok := h.convert(w, r, req)
	if !ok {
		return
	}
	entry.ID = existing.ID
	if entry.Status == "" {
		entry.Status = existing.Status
	}

	saved, err := h.svc.Update(r.Context(), entry)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_updated", "entry_id", saved.ID)

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(saved))
}

// UpdateStatus handles PUT /api/v1/entries/{id}/status.
func (h *EntryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	status, err := model.ParseEntryStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", msgInvalidStatus)
		return
	}

	entry, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", msgEntryNotFound)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), entry, status); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_status_changed", "entry_id", entry.ID, "status", status)

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(entry))
}

// Delete handles DELETE /api/v1/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", msgEntryNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), entry); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_deleted", "entry_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Balance handles GET /api/v1/users/{id}/balance.
func (h *EntryHandler) Balance(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be numeric")
		return
	}

	user, err := h.userSvc.FindByID(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", msgEntryUserNotFound)
		return
	}

	balance, err := h.svc.Balance(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// convert builds a domain entry from the request body, resolving the enum
// strings and the owning user. Writes the error response itself and
// returns false when the request cannot be converted.
func (h *EntryHandler) convert(w http.ResponseWriter, r *http.Request, req dto.SaveEntryRequest) (*model.Entry, bool) {
	entry := &model.Entry{
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Value:       req.Value,
		UserID:      req.UserID,
	}

	if req.Type != "" {
		entryType, err := model.ParseEntryType(req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "Informe um tipo válido!")
			return nil, false
		}
		entry.Type = entryType
	}

	if req.Status != "" {
		status, err := model.ParseEntryStatus(req.Status)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", msgInvalidStatus)
			return nil, false
		}
		entry.Status = status
	}

	// An unset user id falls through to validation, which answers with
	// its own message. A set id must reference an existing user.
	if req.UserID != 0 {
		user, err := h.userSvc.FindByID(r.Context(), req.UserID)
		if err != nil {
			h.handleServiceError(w, err)
			return nil, false
		}
		if user == nil {
			writeError(w, http.StatusBadRequest, "USER_NOT_FOUND", msgEntryUserNotFound)
			return nil, false
		}
	}

	return entry, true
}

// entryID parses the {id} path parameter. Writes the error response itself
// and returns false when the parameter is not numeric.
func (h *EntryHandler) entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Entry ID must be numeric")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses. All
// business-rule violations answer 400 with the exact service message.
// Contract violations panic past this function into the recovery
// middleware on purpose.
func (h *EntryHandler) handleServiceError(w http.ResponseWriter, err error) {
	var (
		businessErr *service.BusinessError
		authErr     *service.AuthError
	)

	switch {
	case errors.As(err, &businessErr):
		writeError(w, http.StatusBadRequest, "BUSINESS_RULE", businessErr.Message)
	case errors.As(err, &authErr):
		writeError(w, http.StatusBadRequest, "AUTHENTICATION", authErr.Message)
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

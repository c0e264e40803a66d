package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wendelDmesquita/minhas-financas-api/internal/handler/dto"
	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
	"github.com/wendelDmesquita/minhas-financas-api/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /api/v1/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	saved, err := h.svc.Register(r.Context(), user)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_registered", "user_id", saved.ID)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(saved))
}

// Authenticate handles POST /api/v1/users/auth.
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_authenticated", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// handleServiceError maps service errors to HTTP responses. Business-rule
// and authentication failures both answer 400 carrying the exact service
// message; the two auth failure modes are distinguished by message only.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
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

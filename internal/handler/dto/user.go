// Package dto defines request and response shapes for the HTTP API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// ErrorResponse is the error shape for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RegisterUserRequest is the request body for POST /api/v1/users.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthRequest is the request body for POST /api/v1/users/auth.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the user shape returned by the API.
// The password never leaves the service boundary.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its API shape.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// BalanceResponse is the response for GET /api/v1/users/{id}/balance.
type BalanceResponse struct {
	UserID  int64           `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

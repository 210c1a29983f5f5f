package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moviefavs/backend/internal/logger"
)

// PasswordSetter defines the interface that the service must implement.
type PasswordSetter interface {
	SetPassword(ctx context.Context, userID int64, password string) error
}

// SetPasswordRequest represents the JSON body for setting a password
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	// User id
	// required: true
	UserID int64 `json:"userId"`

	// New password
	// required: true
	Password string `json:"password"`
}

// SetPasswordResponse represents a successful set-password response
// swagger:model SetPasswordResponse
type SetPasswordResponse struct {
	// Success message
	// default: Password set successfully
	Message string `json:"message"`
}

// NewSetPasswordHandler returns an HTTP handler for setting or replacing a
// password, used by legacy accounts created before password support.
// @Summary Set account password
// @Description Hashes and stores a password for the given user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param setPasswordRequest body handlers.SetPasswordRequest true "Set password request"
// @Success 200 {object} handlers.SetPasswordResponse "Password stored"
// @Failure 400 {object} handlers.ErrorResponse "Missing or weak password"
// @Router /auth/set-password [post]
func NewSetPasswordHandler(svc PasswordSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == 0 || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User id and password are required"})
			return
		}

		if len(req.Password) < 6 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Password must be at least 6 characters long"})
			return
		}

		if err := svc.SetPassword(r.Context(), req.UserID, req.Password); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetPasswordResponse{Message: "Password set successfully"})
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/innovelous/agency/internal/ctxkeys"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login checks the supplied credentials and, on success, issues the session
// cookie. Bad credentials and backend failures both come back as a 401 with
// a generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if !h.authService.Login(email, req.Password) {
		slog.Warn("login failed", "email", email)
		response.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.authService.GenerateSessionToken(email)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.authService.SetSessionCookie(w, token, time.Now().Add(h.authService.SessionExpiry()))

	slog.Info("admin logged in", "email", email)
	response.JSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout clears the session cookie. Local-only; nothing on the backend is
// invalidated.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	response.JSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// Session reports whether the caller holds a valid session. The SPA calls
// this once on load to resolve its route gate.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Admin(r.Context())
	if session == nil {
		response.JSON(w, http.StatusOK, map[string]bool{"authenticated": false})
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"email":         session.Email,
	})
}

// ChangePassword verifies the current password and stores the new one.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		response.Error(w, http.StatusBadRequest, "current and new password are required")
		return
	}

	err = h.authService.ChangePassword(req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case isValidationErr(err):
			response.Error(w, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, "current password is incorrect")
		default:
			slog.Error("failed to change password", "error", err)
			response.Error(w, http.StatusInternalServerError, "failed to change password")
		}
		return
	}

	slog.Info("admin password changed")
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

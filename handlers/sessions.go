// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MarcoProfi00/budget-sociale/auth"
	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/middleware"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/store"
)

var errNoSession = errors.New("no valid session")

// sessionUser resolves the authenticated user from the session cookie.
func sessionUser(db *sql.DB, cfg cliparse.Config, r *http.Request) (models.PublicUser, error) {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil {
		return models.PublicUser{}, errNoSession
	}
	userID, err := auth.ParseSessionToken(cookie.Value, cfg.SessionSalt)
	if err != nil {
		return models.PublicUser{}, errNoSession
	}
	user, err := store.NewUserStore(db).ByID(userID)
	if err != nil {
		return models.PublicUser{}, errNoSession
	}
	return user, nil
}

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// Login handles POST /api/sessions
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, ok, err := store.NewUserStore(h.db).ByCredentials(req.Username, req.Password)
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    auth.GenerateSessionToken(user.ID, h.cfg.SessionSalt),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// Current handles GET /api/sessions/current
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// Logout handles DELETE /api/sessions/current
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

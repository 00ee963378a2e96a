// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/employee-polls/auth"
	"github.com/danielhkuo/employee-polls/engine"
	"github.com/danielhkuo/employee-polls/middleware"
	"github.com/danielhkuo/employee-polls/models"
)

type UserHandler struct {
	engine *engine.Engine
}

func NewUserHandler(e *engine.Engine) *UserHandler {
	return &UserHandler{engine: e}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.engine.Users()

	views := make(map[string]models.UserView, len(users))
	for _, u := range users {
		views[u.ID] = userView(u)
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersResponse{
		Success: true,
		Users:   views,
	})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	u, err := h.engine.GetUser(userID)
	if errors.Is(err, engine.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Success: true,
		User:    userView(u),
	})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	u, err := h.engine.CreateUser(req.Username, req.Password, req.Name, req.AvatarURL)
	if errors.Is(err, engine.ErrUsernameTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", u.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		Success: true,
		ID:      u.ID,
	})
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id and password are required")
		return
	}

	u, err := h.engine.Authenticate(req.ID, req.Password)
	if errors.Is(err, engine.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// Wrong password is a normal outcome, not an HTTP error
		middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Success: false})
		return
	}
	if err != nil {
		slog.Error("failed to authenticate user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	view := userView(u)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		User:    &view,
	})
}

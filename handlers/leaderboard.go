// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/employee-polls/engine"
	"github.com/danielhkuo/employee-polls/middleware"
	"github.com/danielhkuo/employee-polls/models"
)

type LeaderboardHandler struct {
	engine *engine.Engine
}

func NewLeaderboardHandler(e *engine.Engine) *LeaderboardHandler {
	return &LeaderboardHandler{engine: e}
}

// GetLeaderboard handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.engine.RankUsers()

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{
		Success: true,
		Entries: entries,
	})
}

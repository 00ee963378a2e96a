// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/employee-polls/engine"
	"github.com/danielhkuo/employee-polls/middleware"
	"github.com/danielhkuo/employee-polls/models"
)

type VoteHandler struct {
	engine *engine.Engine
}

func NewVoteHandler(e *engine.Engine) *VoteHandler {
	return &VoteHandler{engine: e}
}

// CastVote handles POST /answers
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.QuestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	choice, ok := models.ParseOptionKey(req.Vote)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote must be optionOne or optionTwo")
		return
	}

	q, err := h.engine.CastVote(req.QuestionID, req.Username, choice)
	if errors.Is(err, engine.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if errors.Is(err, engine.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, engine.ErrAlreadyVoted) {
		middleware.ErrorResponse(w, http.StatusConflict, "User already voted on this question")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "question_id", req.QuestionID, "user_id", req.Username, "vote", choice.String())

	middleware.JSONResponse(w, http.StatusCreated, models.QuestionResponse{
		Success:  true,
		Question: questionView(q),
	})
}

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

type QuestionHandler struct {
	engine *engine.Engine
}

func NewQuestionHandler(e *engine.Engine) *QuestionHandler {
	return &QuestionHandler{engine: e}
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.engine.Questions()

	views := make(map[string]models.QuestionView, len(questions))
	for _, q := range questions {
		views[q.ID] = questionView(q)
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:   true,
		Questions: views,
	})
}

// GetQuestion handles GET /questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	q, err := h.engine.GetQuestion(questionID)
	if errors.Is(err, engine.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: questionView(q),
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.OptionOne == "" || req.OptionTwo == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "optionOne and optionTwo are required")
		return
	}

	q, err := h.engine.CreateQuestion(req.Username, req.OptionOne, req.OptionTwo)
	if errors.Is(err, engine.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "author", q.AuthorID)

	middleware.JSONResponse(w, http.StatusCreated, models.QuestionResponse{
		Success:  true,
		Question: questionView(q),
	})
}

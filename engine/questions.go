// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/employee-polls/models"
)

// CreateQuestion authors a new two-option question and records it against
// the author's question list. Fails with ErrUserNotFound when the author
// does not exist.
func (e *Engine) CreateQuestion(authorID, optionAText, optionBText string) (models.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	author, ok := e.store.GetUser(authorID)
	if !ok {
		return models.Question{}, ErrUserNotFound
	}

	q := models.Question{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		OptionA:   models.Option{Text: optionAText, Voters: []string{}},
		OptionB:   models.Option{Text: optionBText, Voters: []string{}},
	}

	author.QuestionIDs = append(author.QuestionIDs, q.ID)

	e.store.Apply(q, author)

	if e.persist != nil {
		if err := e.persist.SaveQuestion(q); err != nil {
			slog.Warn("failed to persist question", "question_id", q.ID, "error", err)
		}
	}

	return q, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"

	"github.com/danielhkuo/employee-polls/models"
)

// CastVote records a user's vote for one option of a question. A user's
// first vote on a question is final: a repeat attempt fails with
// ErrAlreadyVoted and leaves both the question tallies and the user's
// answered set untouched. The option voter set and the user's answered
// set commit in a single store write, so no reader observes one
// without the other.
func (e *Engine) CastVote(questionID, userID string, choice models.OptionKey) (models.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	q, ok := e.store.GetQuestion(questionID)
	if !ok {
		return models.Question{}, ErrQuestionNotFound
	}

	u, ok := e.store.GetUser(userID)
	if !ok {
		return models.Question{}, ErrUserNotFound
	}

	if _, answered := u.Answers[questionID]; answered || q.HasVoted(userID) {
		return models.Question{}, ErrAlreadyVoted
	}

	switch choice {
	case models.OptionB:
		q.OptionB.Voters = append(q.OptionB.Voters, userID)
	default:
		q.OptionA.Voters = append(q.OptionA.Voters, userID)
	}
	u.Answers[questionID] = choice

	e.store.Apply(q, u)

	if e.persist != nil {
		if err := e.persist.SaveVote(questionID, userID, choice); err != nil {
			slog.Warn("failed to persist vote", "question_id", questionID, "user_id", userID, "error", err)
		}
	}

	return q, nil
}

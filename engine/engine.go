// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sync"

	"github.com/danielhkuo/employee-polls/models"
	"github.com/danielhkuo/employee-polls/store"
)

// Persister mirrors committed state transitions to durable storage.
// Implementations must tolerate being called once per transition; the
// in-memory store stays canonical regardless of persister outcomes.
type Persister interface {
	SaveUser(u models.User) error
	SaveQuestion(q models.Question) error
	SaveVote(questionID, userID string, choice models.OptionKey) error
}

// Engine validates and applies all state transitions over the entity store.
// Mutations are serialized by a single mutex; an operation either completes
// fully or fails with one of the package's sentinel errors and leaves the
// store unchanged.
type Engine struct {
	mu      sync.Mutex
	store   *store.Store
	persist Persister
}

// New creates an engine over the given store. The persister may be nil
// for memory-only operation.
func New(s *store.Store, p Persister) *Engine {
	return &Engine{store: s, persist: p}
}

// GetUser returns the user with the given id.
func (e *Engine) GetUser(id string) (models.User, error) {
	u, ok := e.store.GetUser(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// GetQuestion returns the question with the given id.
func (e *Engine) GetQuestion(id string) (models.Question, error) {
	q, ok := e.store.GetQuestion(id)
	if !ok {
		return models.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

// Users returns a snapshot of all users.
func (e *Engine) Users() []models.User {
	return e.store.Users()
}

// Questions returns a snapshot of all questions.
func (e *Engine) Questions() []models.Question {
	return e.store.Questions()
}

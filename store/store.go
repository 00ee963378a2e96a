// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"

	"github.com/danielhkuo/employee-polls/models"
)

// Store is the canonical in-memory home of users and questions.
// Entities cross the boundary as deep copies, so callers can never
// mutate held state except through Put.
type Store struct {
	mu        sync.RWMutex
	users     map[string]models.User
	questions map[string]models.Question
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:     make(map[string]models.User),
		questions: make(map[string]models.Question),
	}
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.ID] = u.Clone()
}

// Users returns a snapshot of all users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// GetQuestion returns the question with the given id.
func (s *Store) GetQuestion(id string) (models.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return models.Question{}, false
	}
	return q.Clone(), true
}

// PutQuestion inserts or replaces a question.
func (s *Store) PutQuestion(q models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions[q.ID] = q.Clone()
}

// Apply inserts or replaces a question and a user in one critical
// section. Readers never observe one write without the other, so a
// transition touching both entities stays atomic to snapshots.
func (s *Store) Apply(q models.Question, u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions[q.ID] = q.Clone()
	s.users[u.ID] = u.Clone()
}

// Questions returns a snapshot of all questions.
func (s *Store) Questions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q.Clone())
	}
	return out
}

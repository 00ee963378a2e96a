// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"

	"github.com/danielhkuo/employee-polls/auth"
	"github.com/danielhkuo/employee-polls/models"
)

// CreateUser registers a new account. The username doubles as the user id
// and must be unique; comparison is a case-sensitive exact match on the
// full string, so "Alice" and "alice" are distinct accounts.
// Fails with ErrUsernameTaken without touching the store.
func (e *Engine) CreateUser(username, password, name, avatarURL string) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.store.GetUser(username); exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           username,
		Name:         name,
		PasswordHash: hash,
		QuestionIDs:  []string{},
		Answers:      map[string]models.OptionKey{},
	}
	if avatarURL != "" {
		u.AvatarURL = &avatarURL
	}

	e.store.PutUser(u)

	if e.persist != nil {
		if err := e.persist.SaveUser(u); err != nil {
			slog.Warn("failed to persist user", "user_id", u.ID, "error", err)
		}
	}

	return u, nil
}

// Authenticate checks a username/password pair and returns the user on
// success. Fails with ErrUserNotFound or auth.ErrInvalidCredentials.
func (e *Engine) Authenticate(username, password string) (models.User, error) {
	u, ok := e.store.GetUser(username)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return models.User{}, err
	}

	return u, nil
}

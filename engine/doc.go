// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the poll state engine over the entity store.

# Operations

All state transitions go through an Engine:

	e := engine.New(store.New(), nil)
	u, err := e.CreateUser("alice", "secret", "Alice", "")
	q, err := e.CreateQuestion("alice", "tabs", "spaces")
	q, err = e.CastVote(q.ID, "alice", models.OptionA)
	entries := e.RankUsers()

# Invariants

The engine enforces, at every step:

  - usernames are unique at creation; a clash fails with ErrUsernameTaken
  - a user votes at most once per question; a repeat fails with ErrAlreadyVoted
  - a user id appears in at most one of a question's two voter sets
  - a user's answered set exactly matches the questions in which the user
    appears as a voter

Failed operations never partially apply: validation happens before any
store write, and the mutation mutex keeps concurrent writers from
interleaving on the same entities.

# Errors

All failures are expected outcomes of user input and are signalled with
the sentinel errors ErrUsernameTaken, ErrUserNotFound, ErrQuestionNotFound,
and ErrAlreadyVoted (plus auth.ErrInvalidCredentials from Authenticate).
Callers match them with errors.Is.

# Persistence

An optional Persister receives each committed transition for write-through
storage. The in-memory store stays canonical; persister failures are
logged and do not roll back the transition.
*/
package engine

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Employee Polls API.

# Handler Types

Each handler is a struct wrapping the poll engine:

  - UserHandler: account creation, login, user lookups
  - QuestionHandler: question authoring and lookups
  - VoteHandler: vote casting
  - LeaderboardHandler: participation rankings

Handlers are created via constructor functions that accept *engine.Engine:

	userHandler := handlers.NewUserHandler(e)

# Account Flow

	POST /users  → CreateUser (409 when the username is taken)
	POST /login  → Login (success flag plus the user view)
	GET  /users  → ListUsers (map keyed by user id)
	GET  /users/{id} → GetUser

# Question Flow

	POST /questions      → CreateQuestion (404 for an unknown author)
	GET  /questions      → ListQuestions (map keyed by question id)
	GET  /questions/{id} → GetQuestion

# Voting

	POST /answers → CastVote

A vote names the question, the voter, and "optionOne" or "optionTwo".
The first vote on a question is final: repeats answer 409 and leave the
tallies unchanged. The response carries the updated question view with
per-option counts and vote shares.

# Leaderboard

	GET /leaderboard → GetLeaderboard

Entries are ranked by answers given, then questions created, with
1-indexed ranks. The ranking is recomputed from the engine snapshot on
every request.

# Error Mapping

Engine sentinel errors map to statuses: not-found errors to 404,
ErrUsernameTaken and ErrAlreadyVoted to 409. Validation failures answer
400 before the engine is invoked.
*/
package handlers

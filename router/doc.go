// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires every handler to its route using Go 1.22+ method
patterns on the standard ServeMux:

	mux := router.NewRouter(e)

Routes:

	GET  /health         liveness probe
	GET  /users          all users
	POST /users          create account
	GET  /users/{id}     single user
	POST /login          password check
	GET  /questions      all questions
	POST /questions      author a question
	GET  /questions/{id} single question
	POST /answers        cast a vote
	GET  /leaderboard    participation ranking
	GET  /              banner

All routes except /health and / are wrapped in request logging.
*/
package router

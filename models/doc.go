// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, view, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: username, password, name, avatar_url
  - LoginRequest: id, password
  - CreateQuestionRequest: username, optionOne, optionTwo
  - CastVoteRequest: username, question_id, vote

# Response Types

Types for JSON responses:

  - CreateUserResponse: success, id
  - LoginResponse: success, user
  - UsersResponse: success, users (map keyed by user id)
  - QuestionsResponse: success, questions (map keyed by question id)
  - LeaderboardResponse: success, entries
  - ErrorResponse: success, error, message

# View Types

Presentation shapes kept from the original API:

  - UserView: answers as a question-id -> "optionOne"|"optionTwo" map
  - QuestionView: optionOne/optionTwo objects with votes, count, share
  - LeaderboardEntry: user_id, answered, created, 1-indexed rank

# Domain Types

Internal data structures owned by the entity store:

  - User: identity, bcrypt password hash, authored and answered question ids
  - Question: author, creation time, and exactly two options
  - Option: text plus the set of voter ids
  - OptionKey: tagged A/B identifier for a question's two options

A question has exactly two options by construction: Question holds OptionA
and OptionB as fixed fields, and OptionKey is the only way to address them.
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/employee-polls/models"
)

func TestCastVote(t *testing.T) {
	e := newTestEngine()
	e.CreateUser("alice", "secret", "Alice", "")
	e.CreateUser("bob", "secret", "Bob", "")
	q, _ := e.CreateQuestion("alice", "tabs", "spaces")

	handler := NewVoteHandler(e)

	tests := []struct {
		name           string
		requestBody    models.CastVoteRequest
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.QuestionResponse)
	}{
		{
			name: "valid vote",
			requestBody: models.CastVoteRequest{
				Username:   "bob",
				QuestionID: q.ID,
				Vote:       "optionOne",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.QuestionResponse) {
				view := resp.Question
				if view.OptionOne.Count != 1 || view.OptionOne.Votes[0] != "bob" {
					t.Errorf("Expected bob's vote in option one, got %+v", view.OptionOne)
				}
				if view.OptionOne.Share != 1.0 {
					t.Errorf("Expected option one share 1.0, got %f", view.OptionOne.Share)
				}
				if view.OptionTwo.Count != 0 || view.OptionTwo.Share != 0 {
					t.Errorf("Expected empty option two, got %+v", view.OptionTwo)
				}
			},
		},
		{
			name: "repeat vote",
			requestBody: models.CastVoteRequest{
				Username:   "bob",
				QuestionID: q.ID,
				Vote:       "optionTwo",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown question",
			requestBody: models.CastVoteRequest{
				Username:   "bob",
				QuestionID: "nonexistent-id",
				Vote:       "optionOne",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown user",
			requestBody: models.CastVoteRequest{
				Username:   "nobody",
				QuestionID: q.ID,
				Vote:       "optionOne",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "invalid vote value",
			requestBody: models.CastVoteRequest{
				Username:   "bob",
				QuestionID: q.ID,
				Vote:       "optionThree",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing question id",
			requestBody: models.CastVoteRequest{
				Username: "bob",
				Vote:     "optionOne",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest("POST", "/answers", tt.requestBody)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.checkResponse != nil {
				var resp models.QuestionResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}

	// The failed repeat vote left the tallies from the first vote intact
	after, _ := e.GetQuestion(q.ID)
	if len(after.OptionA.Voters) != 1 || len(after.OptionB.Voters) != 0 {
		t.Errorf("Expected tallies 1/0 after conflict, got %d/%d",
			len(after.OptionA.Voters), len(after.OptionB.Voters))
	}
}

func TestCastVote_SharesAccumulate(t *testing.T) {
	e := newTestEngine()
	e.CreateUser("alice", "secret", "Alice", "")
	e.CreateUser("bob", "secret", "Bob", "")
	e.CreateUser("carol", "secret", "Carol", "")
	q, _ := e.CreateQuestion("alice", "tabs", "spaces")

	handler := NewVoteHandler(e)

	cast := func(user, vote string) *models.QuestionResponse {
		t.Helper()
		req := jsonRequest("POST", "/answers", models.CastVoteRequest{
			Username:   user,
			QuestionID: q.ID,
			Vote:       vote,
		})
		w := httptest.NewRecorder()
		handler.CastVote(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Vote by %s failed with status %d: %s", user, w.Code, w.Body.String())
		}
		var resp models.QuestionResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return &resp
	}

	cast("alice", "optionOne")
	cast("bob", "optionTwo")
	final := cast("carol", "optionTwo")

	if final.Question.OptionOne.Count != 1 || final.Question.OptionTwo.Count != 2 {
		t.Errorf("Expected tallies 1/2, got %d/%d",
			final.Question.OptionOne.Count, final.Question.OptionTwo.Count)
	}
	if final.Question.OptionTwo.Share < 0.66 || final.Question.OptionTwo.Share > 0.67 {
		t.Errorf("Expected option two share 2/3, got %f", final.Question.OptionTwo.Share)
	}
}

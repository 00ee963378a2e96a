// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/employee-polls/engine"
	"github.com/danielhkuo/employee-polls/models"
	"github.com/danielhkuo/employee-polls/store"
)

// NewTestEngine creates a memory-only engine with a fresh store
func NewTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(store.New(), nil)
}

// CreateTestUser registers a user and fails the test on error
func CreateTestUser(t *testing.T, e *engine.Engine, username string) models.User {
	t.Helper()

	u, err := e.CreateUser(username, "secret", "Test "+username, "")
	if err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}
	return u
}

// CreateTestQuestion authors a question and fails the test on error
func CreateTestQuestion(t *testing.T, e *engine.Engine, authorID string) models.Question {
	t.Helper()

	q, err := e.CreateQuestion(authorID, "write tests first", "write tests after")
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"testing"

	"github.com/danielhkuo/employee-polls/models"
	"github.com/danielhkuo/employee-polls/store"
)

// seedUser builds a user with the given participation counts. The
// leaderboard only reads the sizes of the two collections.
func seedUser(id string, answered, created int) models.User {
	u := models.User{
		ID:          id,
		Name:        "User " + id,
		QuestionIDs: []string{},
		Answers:     map[string]models.OptionKey{},
	}
	for i := 0; i < answered; i++ {
		u.Answers[fmt.Sprintf("answered-%s-%d", id, i)] = models.OptionA
	}
	for i := 0; i < created; i++ {
		u.QuestionIDs = append(u.QuestionIDs, fmt.Sprintf("created-%s-%d", id, i))
	}
	return u
}

func TestRankUsers_AnsweredDescending(t *testing.T) {
	st := store.New()
	e := New(st, nil)
	st.PutUser(seedUser("u3", 3, 10))
	st.PutUser(seedUser("u4", 4, 0))

	entries := e.RankUsers()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// More answers wins regardless of created count
	if entries[0].UserID != "u4" || entries[1].UserID != "u3" {
		t.Errorf("Expected order [u4 u3], got [%s %s]", entries[0].UserID, entries[1].UserID)
	}
}

func TestRankUsers_CreatedTieBreak(t *testing.T) {
	st := store.New()
	e := New(st, nil)
	st.PutUser(seedUser("u1", 5, 2))
	st.PutUser(seedUser("u2", 5, 3))

	entries := e.RankUsers()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].UserID != "u2" || entries[1].UserID != "u1" {
		t.Errorf("Expected order [u2 u1], got [%s %s]", entries[0].UserID, entries[1].UserID)
	}
}

func TestRankUsers_EntriesAndRanks(t *testing.T) {
	st := store.New()
	e := New(st, nil)
	st.PutUser(seedUser("alice", 2, 1))
	st.PutUser(seedUser("bob", 0, 0))
	st.PutUser(seedUser("carol", 1, 4))

	entries := e.RankUsers()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	wantOrder := []string{"alice", "carol", "bob"}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, entries[i].UserID)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("Position %d: expected rank %d, got %d", i, i+1, entries[i].Rank)
		}
	}

	if entries[0].Answered != 2 || entries[0].Created != 1 {
		t.Errorf("Expected alice counts 2/1, got %d/%d", entries[0].Answered, entries[0].Created)
	}
	if entries[0].Name != "User alice" {
		t.Errorf("Expected entry to carry the display name, got %q", entries[0].Name)
	}
}

func TestRankUsers_ExactTiesStayDeterministic(t *testing.T) {
	st := store.New()
	e := New(st, nil)
	st.PutUser(seedUser("x", 2, 2))
	st.PutUser(seedUser("y", 2, 2))

	// No particular relative order is promised for exact ties, but
	// repeated calls must agree with each other.
	first := e.RankUsers()
	for i := 0; i < 10; i++ {
		again := e.RankUsers()
		for j := range first {
			if again[j].UserID != first[j].UserID {
				t.Fatalf("Ranking changed between calls: %v vs %v", first, again)
			}
		}
	}
}

func TestRankUsers_PureDerivation(t *testing.T) {
	st := store.New()
	e := New(st, nil)
	st.PutUser(seedUser("alice", 3, 1))

	e.RankUsers()
	e.RankUsers()

	u, _ := e.GetUser("alice")
	if u.NumAnswered() != 3 || u.NumCreated() != 1 {
		t.Errorf("RankUsers must not mutate user state, got %d/%d", u.NumAnswered(), u.NumCreated())
	}
}

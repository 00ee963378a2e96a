// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sort"

	"github.com/danielhkuo/employee-polls/models"
)

// RankUsers derives the participation leaderboard from the current store
// snapshot. Users sort by answered count descending, then authored count
// descending, then user id ascending. The derivation is pure: counters are
// recomputed from the snapshot on every call and nothing is mutated.
func (e *Engine) RankUsers() []models.LeaderboardEntry {
	users := e.store.Users()

	sort.Slice(users, func(i, j int) bool {
		a, b := users[i], users[j]

		if a.NumAnswered() != b.NumAnswered() {
			return a.NumAnswered() > b.NumAnswered()
		}

		if a.NumCreated() != b.NumCreated() {
			return a.NumCreated() > b.NumCreated()
		}

		return a.ID < b.ID
	})

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{
			UserID:    u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
			Answered:  u.NumAnswered(),
			Created:   u.NumCreated(),
			Rank:      i + 1, // 1-indexed ranking
		}
	}

	return entries
}

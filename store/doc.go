// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the canonical in-memory entity state.

The store is a keyed mapping from id to entity for users and questions,
exposing get, put (insert-or-replace), and full snapshot reads:

	s := store.New()
	s.PutUser(u)
	u, ok := s.GetUser("alice")
	all := s.Users()

Nothing mutates stored entities in place: every mutation is expressed as
"produce an updated entity and Put it". Entities are deep-copied on both
sides of the boundary, and a sync.RWMutex keeps concurrent readers from
ever observing a partially applied write. Transitions that update a
question and a user as a pair go through Apply, which commits both under
one write lock.
*/
package store

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// OptionKey identifies one of a question's two options.
type OptionKey int

const (
	OptionA OptionKey = iota
	OptionB
)

// Wire names for the two options, kept from the original API.
const (
	optionOneName = "optionOne"
	optionTwoName = "optionTwo"
)

// String returns the wire name for the option key.
func (k OptionKey) String() string {
	if k == OptionB {
		return optionTwoName
	}
	return optionOneName
}

// ParseOptionKey maps a wire name to an option key.
func ParseOptionKey(s string) (OptionKey, bool) {
	switch s {
	case optionOneName:
		return OptionA, true
	case optionTwoName:
		return OptionB, true
	}
	return 0, false
}

// Request types

type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type CreateQuestionRequest struct {
	Username  string `json:"username"`
	OptionOne string `json:"optionOne"`
	OptionTwo string `json:"optionTwo"`
}

type CastVoteRequest struct {
	Username   string `json:"username"`
	QuestionID string `json:"question_id"`
	Vote       string `json:"vote"` // "optionOne" or "optionTwo"
}

// Response types

type CreateUserResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	User    *UserView `json:"user,omitempty"`
}

type UsersResponse struct {
	Success bool                `json:"success"`
	Users   map[string]UserView `json:"users"`
}

type UserResponse struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

type QuestionsResponse struct {
	Success   bool                    `json:"success"`
	Questions map[string]QuestionView `json:"questions"`
}

type QuestionResponse struct {
	Success  bool         `json:"success"`
	Question QuestionView `json:"question"`
}

type LeaderboardResponse struct {
	Success bool               `json:"success"`
	Entries []LeaderboardEntry `json:"entries"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// View types, shaped like the original API's JSON

type UserView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	AvatarURL *string           `json:"avatar_url"`
	Answers   map[string]string `json:"answers"`   // question id -> "optionOne"|"optionTwo"
	Questions []string          `json:"questions"` // authored question ids, insertion order
}

type OptionView struct {
	Text  string   `json:"text"`
	Votes []string `json:"votes"`
	Count int      `json:"count"`
	Share float64  `json:"share"`
}

type QuestionView struct {
	ID        string     `json:"id"`
	Author    string     `json:"author"`
	Timestamp int64      `json:"timestamp"`
	OptionOne OptionView `json:"optionOne"`
	OptionTwo OptionView `json:"optionTwo"`
}

type LeaderboardEntry struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Answered  int     `json:"answered"`
	Created   int     `json:"created"`
	Rank      int     `json:"rank"` // 1-indexed ranking
}

// Domain types

type User struct {
	ID           string
	Name         string
	PasswordHash string
	AvatarURL    *string
	QuestionIDs  []string             // authored questions, insertion order
	Answers      map[string]OptionKey // answered question id -> chosen option
}

// NumAnswered reports how many questions the user has voted on.
func (u User) NumAnswered() int { return len(u.Answers) }

// NumCreated reports how many questions the user has authored.
func (u User) NumCreated() int { return len(u.QuestionIDs) }

// Clone returns a deep copy safe to hand across the store boundary.
func (u User) Clone() User {
	c := u
	c.QuestionIDs = append([]string(nil), u.QuestionIDs...)
	c.Answers = make(map[string]OptionKey, len(u.Answers))
	for q, k := range u.Answers {
		c.Answers[q] = k
	}
	return c
}

type Option struct {
	Text   string
	Voters []string // user ids, insertion order; set semantics enforced by the engine
}

// HasVoter reports whether the user id is in the option's voter set.
func (o Option) HasVoter(userID string) bool {
	for _, id := range o.Voters {
		if id == userID {
			return true
		}
	}
	return false
}

type Question struct {
	ID        string
	AuthorID  string
	CreatedAt time.Time
	OptionA   Option
	OptionB   Option
}

// Option returns the option for the given key.
func (q Question) Option(k OptionKey) Option {
	if k == OptionB {
		return q.OptionB
	}
	return q.OptionA
}

// HasVoted reports whether the user id appears in either option's voter set.
func (q Question) HasVoted(userID string) bool {
	return q.OptionA.HasVoter(userID) || q.OptionB.HasVoter(userID)
}

// TotalVotes is the combined vote count across both options.
func (q Question) TotalVotes() int {
	return len(q.OptionA.Voters) + len(q.OptionB.Voters)
}

// VoteShare is the option's fraction of all votes on the question.
// A question with no votes reports 0 for both options.
func (q Question) VoteShare(k OptionKey) float64 {
	total := q.TotalVotes()
	if total == 0 {
		return 0
	}
	return float64(len(q.Option(k).Voters)) / float64(total)
}

// Clone returns a deep copy safe to hand across the store boundary.
func (q Question) Clone() Question {
	c := q
	c.OptionA.Voters = append([]string(nil), q.OptionA.Voters...)
	c.OptionB.Voters = append([]string(nil), q.OptionB.Voters...)
	return c
}

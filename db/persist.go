// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/employee-polls/models"
)

// Vote column values, kept from the original schema.
const (
	voteOptionOne = 1
	voteOptionTwo = 2
)

// Store mirrors committed engine transitions to a SQL database and loads
// them back at startup. It implements engine.Persister.
type Store struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

// NewStore wraps an open database connection for the given driver.
func NewStore(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// SaveUser inserts a newly registered user.
func (s *Store) SaveUser(u models.User) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO users (id, password_hash, name, avatar_url)
		VALUES (?, ?, ?, ?)
	`), u.ID, u.PasswordHash, u.Name, u.AvatarURL)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// SaveQuestion inserts a newly authored question.
func (s *Store) SaveQuestion(q models.Question) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO questions (id, author_id, option_one, option_two, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), q.ID, q.AuthorID, q.OptionA.Text, q.OptionB.Text, q.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// SaveVote inserts a cast vote. One row covers both sides of the
// transition: the option's voter set and the user's answered set are
// both derived from the answers table on load.
func (s *Store) SaveVote(questionID, userID string, choice models.OptionKey) error {
	vote := voteOptionOne
	if choice == models.OptionB {
		vote = voteOptionTwo
	}

	_, err := s.db.Exec(s.rebind(`
		INSERT INTO answers (question_id, user_id, vote)
		VALUES (?, ?, ?)
	`), questionID, userID, vote)
	if err != nil {
		return fmt.Errorf("failed to insert answer: %w", err)
	}
	return nil
}

// Load reads all persisted state back into entity form, with authored
// question lists in creation order and voter sets rebuilt from answers.
func (s *Store) Load() ([]models.User, []models.Question, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.loadQuestions(users)
	if err != nil {
		return nil, nil, err
	}

	if err := s.loadAnswers(users, questions); err != nil {
		return nil, nil, err
	}

	outUsers := make([]models.User, 0, len(users))
	for _, u := range users {
		outUsers = append(outUsers, *u)
	}
	outQuestions := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		outQuestions = append(outQuestions, *q)
	}
	return outUsers, outQuestions, nil
}

func (s *Store) loadUsers() (map[string]*models.User, error) {
	rows, err := s.db.Query(`SELECT id, password_hash, name, avatar_url FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make(map[string]*models.User)
	for rows.Next() {
		var u models.User
		var avatarURL sql.NullString
		if err := rows.Scan(&u.ID, &u.PasswordHash, &u.Name, &avatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if avatarURL.Valid {
			url := avatarURL.String
			u.AvatarURL = &url
		}
		u.QuestionIDs = []string{}
		u.Answers = map[string]models.OptionKey{}
		users[u.ID] = &u
	}
	return users, rows.Err()
}

func (s *Store) loadQuestions(users map[string]*models.User) (map[string]*models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, author_id, option_one, option_two, created_at
		FROM questions ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := make(map[string]*models.Question)
	for rows.Next() {
		var q models.Question
		var createdAt int64
		if err := rows.Scan(&q.ID, &q.AuthorID, &q.OptionA.Text, &q.OptionB.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.CreatedAt = time.Unix(createdAt, 0)
		q.OptionA.Voters = []string{}
		q.OptionB.Voters = []string{}
		questions[q.ID] = &q

		if author, ok := users[q.AuthorID]; ok {
			author.QuestionIDs = append(author.QuestionIDs, q.ID)
		}
	}
	return questions, rows.Err()
}

func (s *Store) loadAnswers(users map[string]*models.User, questions map[string]*models.Question) error {
	rows, err := s.db.Query(`SELECT question_id, user_id, vote FROM answers`)
	if err != nil {
		return fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questionID, userID string
		var vote int
		if err := rows.Scan(&questionID, &userID, &vote); err != nil {
			return fmt.Errorf("failed to scan answer: %w", err)
		}

		choice := models.OptionA
		if vote == voteOptionTwo {
			choice = models.OptionB
		}

		if q, ok := questions[questionID]; ok {
			if choice == models.OptionB {
				q.OptionB.Voters = append(q.OptionB.Voters, userID)
			} else {
				q.OptionA.Voters = append(q.OptionA.Voters, userID)
			}
		}
		if u, ok := users[userID]; ok {
			u.Answers[questionID] = choice
		}
	}
	return rows.Err()
}

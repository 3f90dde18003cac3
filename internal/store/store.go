// Package store defines the persistence boundary for users, questions,
// answers and sessions. All lookups are point lookups by identifier or
// unique key; ErrNotFound is the single not-found signal.
package store

import (
	"errors"
	"time"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicate is returned when an insert collides with a unique key,
// such as the session access-token index.
var ErrDuplicate = errors.New("store: duplicate key")

// UserStore persists accounts.
type UserStore interface {
	CreateUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UserByUUID(uuid string) (*models.User, error)
	DeleteUser(u *models.User) error
}

// SessionStore persists login sessions.
type SessionStore interface {
	CreateSession(s *models.Session) error
	SessionByToken(token string) (*models.Session, error)
	// LogoutSession stamps LogoutAt and ExpiresAt with at, conditionally
	// on the session still being live (LogoutAt null). When two signout
	// calls race on the same token, exactly one sees the row; the other
	// gets ErrNotFound.
	LogoutSession(token string, at time.Time) (*models.Session, error)
}

// QuestionStore persists questions.
type QuestionStore interface {
	CreateQuestion(q *models.Question) error
	QuestionByUUID(uuid string) (*models.Question, error)
	QuestionByContent(content string) (*models.Question, error)
	AllQuestions() ([]models.Question, error)
	QuestionsByUser(userID uint) ([]models.Question, error)
	UpdateQuestion(q *models.Question) error
	DeleteQuestion(q *models.Question) error
}

// AnswerStore persists answers.
type AnswerStore interface {
	CreateAnswer(a *models.Answer) error
	AnswerByUUID(uuid string) (*models.Answer, error)
	AnswersByQuestion(questionID uint) ([]models.Answer, error)
	UpdateAnswer(a *models.Answer) error
	DeleteAnswer(a *models.Answer) error
}

// Store is the full persistence surface the handlers and the auth core
// depend on.
type Store interface {
	UserStore
	SessionStore
	QuestionStore
	AnswerStore
}

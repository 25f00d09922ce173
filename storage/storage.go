// Package storage defines the persistence interfaces consumed by the auth
// and quiz services, plus their Postgres and in-memory implementations.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Alexander2005-rgb/Quiz-application/models"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("storage: record not found")
	// ErrDuplicate is returned when an insert hits a uniqueness constraint.
	ErrDuplicate = errors.New("storage: duplicate record")
)

// QuizSummary is the projection returned by ListQuizzes: no question or
// answer bodies.
type QuizSummary struct {
	QuizID    string    `json:"quizId"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserStorage interface {
	// FindUserByUsername returns ErrNotFound when no account matches.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	// InsertUser persists a new account. The insert is conditional on the
	// username being free; a taken username yields ErrDuplicate.
	InsertUser(ctx context.Context, user *models.User) error
}

type QuizStorage interface {
	// FindQuizzes returns quizzes matching quizID, questions included, or
	// every quiz when quizID is empty. No match is an empty slice, not an
	// error.
	FindQuizzes(ctx context.Context, quizID string) ([]models.Quiz, error)

	// ListQuizzes returns summaries of all quizzes.
	ListQuizzes(ctx context.Context) ([]QuizSummary, error)

	// InsertQuiz persists a new quiz; a taken quiz id yields ErrDuplicate.
	InsertQuiz(ctx context.Context, quiz *models.Quiz) error

	// AppendQuestion atomically assigns the question's position and appends
	// it to the quiz, returning the updated quiz. Unknown quiz ids yield
	// ErrNotFound. Concurrent appends to the same quiz serialize.
	AppendQuestion(ctx context.Context, quizID string, q models.Question) (*models.Quiz, error)

	// DeleteAllQuizzes removes every quiz and question, returning the number
	// of quizzes removed.
	DeleteAllQuizzes(ctx context.Context) (int64, error)
}

type ResultStorage interface {
	InsertResult(ctx context.Context, result *models.Result) error
	FindAllResults(ctx context.Context) ([]models.Result, error)
	DeleteAllResults(ctx context.Context) (int64, error)
}

// Storage bundles everything the services need from the persistence layer.
type Storage interface {
	UserStorage
	QuizStorage
	ResultStorage
}

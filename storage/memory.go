package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Alexander2005-rgb/Quiz-application/models"
)

// MemoryStorage implements Storage in memory. It backs the test suites and
// is handy for local runs without Postgres. A single mutex stands in for the
// per-record atomicity the database provides in production.
type MemoryStorage struct {
	mu      sync.Mutex
	users   []models.User
	quizzes []models.Quiz
	results []models.Result
	nextID  uint
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) id() uint {
	s.nextID++
	return s.nextID
}

func (s *MemoryStorage) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) InsertUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.ID = s.id()
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStorage) FindQuizzes(_ context.Context, quizID string) ([]models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quizzes := []models.Quiz{}
	for _, q := range s.quizzes {
		if quizID == "" || q.QuizID == quizID {
			quizzes = append(quizzes, copyQuiz(q))
		}
	}
	return quizzes, nil
}

func (s *MemoryStorage) ListQuizzes(_ context.Context) ([]QuizSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := []QuizSummary{}
	for _, q := range s.quizzes {
		summaries = append(summaries, QuizSummary{QuizID: q.QuizID, CreatedAt: q.CreatedAt})
	}
	return summaries, nil
}

func (s *MemoryStorage) InsertQuiz(_ context.Context, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quizzes {
		if q.QuizID == quiz.QuizID {
			return ErrDuplicate
		}
	}
	quiz.ID = s.id()
	quiz.CreatedAt = time.Now()
	for i := range quiz.Questions {
		quiz.Questions[i].ID = s.id()
		quiz.Questions[i].QuizRef = quiz.ID
	}
	s.quizzes = append(s.quizzes, copyQuiz(*quiz))
	return nil
}

func (s *MemoryStorage) AppendQuestion(_ context.Context, quizID string, q models.Question) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].QuizID != quizID {
			continue
		}
		q.ID = s.id()
		q.QuizRef = s.quizzes[i].ID
		q.Seq = len(s.quizzes[i].Questions) + 1
		q.CreatedAt = time.Now()
		s.quizzes[i].Questions = append(s.quizzes[i].Questions, q)
		quiz := copyQuiz(s.quizzes[i])
		return &quiz, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) DeleteAllQuizzes(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.quizzes))
	s.quizzes = nil
	return count, nil
}

func (s *MemoryStorage) InsertResult(_ context.Context, result *models.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = s.id()
	result.CreatedAt = time.Now()
	s.results = append(s.results, *result)
	return nil
}

func (s *MemoryStorage) FindAllResults(_ context.Context) ([]models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.Result, len(s.results))
	copy(results, s.results)
	return results, nil
}

func (s *MemoryStorage) DeleteAllResults(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.results))
	s.results = nil
	return count, nil
}

func copyQuiz(q models.Quiz) models.Quiz {
	questions := make([]models.Question, len(q.Questions))
	copy(questions, q.Questions)
	q.Questions = questions
	return q
}

package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alexander2005-rgb/Quiz-application/models"
)

// GormStorage is the Postgres-backed Storage. It relies on the database for
// the consistency the API promises: unique indexes turn concurrent
// create-if-absent races into ErrDuplicate, and question appends run in a
// transaction holding a row lock on the quiz.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) InsertUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStorage) FindQuizzes(ctx context.Context, quizID string) ([]models.Quiz, error) {
	query := s.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})
	if quizID != "" {
		query = query.Where("quiz_id = ?", quizID)
	}

	var quizzes []models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *GormStorage) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	var summaries []QuizSummary
	err := s.db.WithContext(ctx).Model(&models.Quiz{}).
		Select("quiz_id, created_at").
		Order("created_at ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *GormStorage) InsertQuiz(ctx context.Context, quiz *models.Quiz) error {
	if err := s.db.WithContext(ctx).Create(quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStorage) AppendQuestion(ctx context.Context, quizID string, q models.Question) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the quiz row so concurrent appends serialize and positions
		// stay dense.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("quiz_id = ?", quizID).
			First(&quiz).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Question{}).Where("quiz_ref = ?", quiz.ID).Count(&count).Error; err != nil {
			return err
		}

		q.QuizRef = quiz.ID
		q.Seq = int(count) + 1
		if err := tx.Create(&q).Error; err != nil {
			return err
		}

		return tx.Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).First(&quiz, quiz.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *GormStorage) DeleteAllQuizzes(ctx context.Context) (int64, error) {
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	// Hard delete: soft-deleted rows would keep holding the unique quiz id.
	if err := db.Unscoped().Delete(&models.Question{}).Error; err != nil {
		return 0, err
	}
	res := db.Unscoped().Delete(&models.Quiz{})
	return res.RowsAffected, res.Error
}

func (s *GormStorage) InsertResult(ctx context.Context, result *models.Result) error {
	return s.db.WithContext(ctx).Create(result).Error
}

func (s *GormStorage) FindAllResults(ctx context.Context) ([]models.Result, error) {
	var results []models.Result
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *GormStorage) DeleteAllResults(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&models.Result{})
	return res.RowsAffected, res.Error
}

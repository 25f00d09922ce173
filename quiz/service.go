// Package quiz implements quiz and result management: shape invariants on
// question data, first-run seeding of the default set, and the write-once
// result log.
package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/models"
	"github.com/Alexander2005-rgb/Quiz-application/storage"
)

// A quiz holds multiple-choice questions with exactly this many options.
const OptionCount = 3

var (
	ErrDuplicateQuiz      = apperr.New(apperr.KindConflict, apperr.CodeDuplicateQuiz, "quiz already exists")
	ErrQuizNotFound       = apperr.New(apperr.KindNotFound, apperr.CodeQuizNotFound, "quiz not found")
	ErrInvalidOptionCount = apperr.New(apperr.KindValidation, apperr.CodeInvalidOptionCount, "exactly 3 options are required")
	ErrInvalidAnswerIndex = apperr.New(apperr.KindValidation, apperr.CodeInvalidAnswerIndex, "correct answer must be 0, 1, or 2")
)

// QuizView is the wire shape of a quiz. Answers is a parallel array keyed by
// question index; it is derived from per-question data, so the two sides
// always have equal length.
type QuizView struct {
	QuizID    string         `json:"quizId"`
	Questions []QuestionView `json:"questions"`
	Answers   []int          `json:"answers"`
	CreatedAt time.Time      `json:"createdAt"`
}

type QuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// ResultView is the wire shape of a stored result; Result carries the
// submission's opaque outcome array back verbatim.
type ResultView struct {
	Username  string          `json:"username"`
	Result    json.RawMessage `json:"result"`
	Attempts  int             `json:"attempts"`
	Points    int             `json:"points"`
	Achived   string          `json:"achived"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AddQuestionInput carries one question-append request. CorrectAnswer is a
// pointer so an absent field is distinguishable from answer 0.
type AddQuestionInput struct {
	QuizID        string
	Question      string
	Options       []string
	CorrectAnswer *int
}

type Service struct {
	store   storage.QuizStorage
	results storage.ResultStorage
}

func NewService(store storage.QuizStorage, results storage.ResultStorage) *Service {
	return &Service{store: store, results: results}
}

// ListQuizzes returns current summaries of every quiz; each call re-queries.
func (s *Service) ListQuizzes(ctx context.Context) ([]storage.QuizSummary, error) {
	summaries, err := s.store.ListQuizzes(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return summaries, nil
}

// CreateQuiz persists a new quiz with no questions yet.
func (s *Service) CreateQuiz(ctx context.Context, quizID string) (*QuizView, error) {
	if quizID == "" {
		return nil, apperr.MissingField("quizName")
	}

	q := &models.Quiz{QuizID: quizID}
	if err := s.store.InsertQuiz(ctx, q); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateQuiz
		}
		return nil, apperr.Internal(err)
	}
	view := viewOf(*q)
	return &view, nil
}

// GetQuestions returns quizzes matching quizID, or all quizzes when quizID
// is empty. A quizID with no match is an empty slice, not an error, so the
// caller can tell "no quiz" from "quiz with no questions". On an entirely
// empty store the built-in default set is seeded first.
func (s *Service) GetQuestions(ctx context.Context, quizID string) ([]QuizView, error) {
	quizzes, err := s.store.FindQuizzes(ctx, quizID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if len(quizzes) == 0 && quizID == "" {
		// First run: seed the default set. A concurrent seeder may win the
		// insert; either way the re-query returns the seeded data.
		if err := s.store.InsertQuiz(ctx, defaultQuiz()); err != nil && !errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.Internal(err)
		}
		if quizzes, err = s.store.FindQuizzes(ctx, ""); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	views := make([]QuizView, 0, len(quizzes))
	for _, q := range quizzes {
		views = append(views, viewOf(q))
	}
	return views, nil
}

// AddQuestion validates and appends one question to a quiz. The position is
// assigned by the storage layer under a lock, so concurrent appends cannot
// collide.
func (s *Service) AddQuestion(ctx context.Context, in AddQuestionInput) (*QuizView, error) {
	switch {
	case in.QuizID == "":
		return nil, apperr.MissingField("quizId")
	case in.Question == "":
		return nil, apperr.MissingField("question")
	case in.Options == nil:
		return nil, apperr.MissingField("options")
	case in.CorrectAnswer == nil:
		return nil, apperr.MissingField("correctAnswer")
	}
	if len(in.Options) != OptionCount {
		return nil, ErrInvalidOptionCount
	}
	if *in.CorrectAnswer < 0 || *in.CorrectAnswer >= OptionCount {
		return nil, ErrInvalidAnswerIndex
	}

	options, err := json.Marshal(in.Options)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	quiz, err := s.store.AppendQuestion(ctx, in.QuizID, models.Question{
		Question:      in.Question,
		Options:       string(options),
		CorrectAnswer: *in.CorrectAnswer,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, apperr.Internal(err)
	}
	view := viewOf(*quiz)
	return &view, nil
}

// InsertDefaultSet bulk-inserts the built-in question set.
func (s *Service) InsertDefaultSet(ctx context.Context) error {
	if err := s.store.InsertQuiz(ctx, defaultQuiz()); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrDuplicateQuiz
		}
		return apperr.Internal(err)
	}
	return nil
}

// DropAllQuizzes removes every quiz. Irreversible.
func (s *Service) DropAllQuizzes(ctx context.Context) (int64, error) {
	count, err := s.store.DeleteAllQuizzes(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return count, nil
}

// RecordResult stores one attempt outcome. The check mirrors the previous
// API version exactly: the submission is rejected only when username and
// result are BOTH absent, so either one alone passes.
func (s *Service) RecordResult(ctx context.Context, username string, result json.RawMessage, attempts, points int, achived string) (*ResultView, error) {
	if username == "" && len(result) == 0 {
		return nil, apperr.MissingField("username or result")
	}

	r := &models.Result{
		Username: username,
		Result:   string(result),
		Attempts: attempts,
		Points:   points,
		Achived:  achived,
	}
	if err := s.results.InsertResult(ctx, r); err != nil {
		return nil, apperr.Internal(err)
	}
	view := resultViewOf(*r)
	return &view, nil
}

func (s *Service) ListResults(ctx context.Context) ([]ResultView, error) {
	results, err := s.results.FindAllResults(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	views := make([]ResultView, 0, len(results))
	for _, r := range results {
		views = append(views, resultViewOf(r))
	}
	return views, nil
}

func (s *Service) DropAllResults(ctx context.Context) (int64, error) {
	count, err := s.results.DeleteAllResults(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return count, nil
}

func viewOf(q models.Quiz) QuizView {
	view := QuizView{
		QuizID:    q.QuizID,
		Questions: []QuestionView{},
		Answers:   []int{},
		CreatedAt: q.CreatedAt,
	}
	for _, question := range q.Questions {
		var options []string
		if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
			options = []string{}
		}
		view.Questions = append(view.Questions, QuestionView{
			ID:       question.Seq,
			Question: question.Question,
			Options:  options,
		})
		view.Answers = append(view.Answers, question.CorrectAnswer)
	}
	return view
}

func resultViewOf(r models.Result) ResultView {
	view := ResultView{
		Username:  r.Username,
		Attempts:  r.Attempts,
		Points:    r.Points,
		Achived:   r.Achived,
		CreatedAt: r.CreatedAt,
	}
	if r.Result != "" {
		view.Result = json.RawMessage(r.Result)
	}
	return view
}

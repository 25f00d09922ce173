package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/quiz"
	"github.com/Alexander2005-rgb/Quiz-application/utils"
)

type QuizController struct {
	Quiz *quiz.Service
}

func NewQuizController(quizService *quiz.Service) *QuizController {
	return &QuizController{Quiz: quizService}
}

// GetQuestions returns quizzes matching the quizId query parameter, or all
// quizzes (seeding the default set on first run) when it is omitted.
func (qc *QuizController) GetQuestions(c *fiber.Ctx) error {
	quizzes, err := qc.Quiz.GetQuestions(c.Context(), c.Query("quizId"))
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(quizzes)
}

// InsertDefault bulk-inserts the built-in question set.
func (qc *QuizController) InsertDefault(c *fiber.Ctx) error {
	if err := qc.Quiz.InsertDefaultSet(c.Context()); err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Questions inserted successfully"})
}

// DropQuestions deletes every quiz. Admin only.
func (qc *QuizController) DropQuestions(c *fiber.Ctx) error {
	count, err := qc.Quiz.DropAllQuizzes(c.Context())
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Questions deleted successfully", "deleted": count})
}

// GetQuizzes lists quiz summaries without question bodies.
func (qc *QuizController) GetQuizzes(c *fiber.Ctx) error {
	summaries, err := qc.Quiz.ListQuizzes(c.Context())
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(summaries)
}

// CreateQuiz creates an empty named quiz.
func (qc *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var input struct {
		QuizName string `json:"quizName"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, "cannot parse JSON"))
	}

	created, err := qc.Quiz.CreateQuiz(c.Context(), input.QuizName)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":  "Quiz created successfully",
		"quiz": created,
	})
}

// AddQuestion appends one question to a quiz. Admin only.
func (qc *QuizController) AddQuestion(c *fiber.Ctx) error {
	var input struct {
		QuizID        string   `json:"quizId"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer *int     `json:"correctAnswer"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, "cannot parse JSON"))
	}

	updated, err := qc.Quiz.AddQuestion(c.Context(), quiz.AddQuestionInput{
		QuizID:        input.QuizID,
		Question:      input.Question,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
	})
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"msg":  "Question added successfully",
		"quiz": updated,
	})
}

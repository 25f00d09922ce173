package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/quiz"
	"github.com/Alexander2005-rgb/Quiz-application/utils"
)

type ResultController struct {
	Quiz *quiz.Service
}

func NewResultController(quizService *quiz.Service) *ResultController {
	return &ResultController{Quiz: quizService}
}

func (rc *ResultController) GetResults(c *fiber.Ctx) error {
	results, err := rc.Quiz.ListResults(c.Context())
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(results)
}

// StoreResult records one attempt outcome. The result payload is opaque to
// the server and stored verbatim.
func (rc *ResultController) StoreResult(c *fiber.Ctx) error {
	var input struct {
		Username string          `json:"username"`
		Result   json.RawMessage `json:"result"`
		Attempts int             `json:"attempts"`
		Points   int             `json:"points"`
		Achived  string          `json:"achived"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, "cannot parse JSON"))
	}

	result, err := rc.Quiz.RecordResult(c.Context(), input.Username, input.Result, input.Attempts, input.Points, input.Achived)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"msg":    "Result saved successfully",
		"result": result,
	})
}

// DropResults clears the result log. Admin only.
func (rc *ResultController) DropResults(c *fiber.Ctx) error {
	count, err := rc.Quiz.DropAllResults(c.Context())
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Results deleted successfully", "deleted": count})
}

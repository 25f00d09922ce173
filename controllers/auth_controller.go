package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/auth"
	"github.com/Alexander2005-rgb/Quiz-application/models"
	"github.com/Alexander2005-rgb/Quiz-application/utils"
)

type AuthController struct {
	Auth *auth.Service
}

func NewAuthController(authService *auth.Service) *AuthController {
	return &AuthController{Auth: authService}
}

// Register creates a new account. Role defaults to user; the password never
// leaves this handler in any response.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Username string      `json:"username"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, "cannot parse JSON"))
	}

	user, err := ac.Auth.Register(c.Context(), input.Username, input.Password, input.Role)
	if err != nil {
		return utils.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": "User registered successfully",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Login verifies credentials and returns a bearer token with a redacted
// user view. Unknown usernames and wrong passwords are indistinguishable.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, "cannot parse JSON"))
	}

	token, user, err := ac.Auth.Login(c.Context(), input.Username, input.Password)
	if err != nil {
		return utils.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

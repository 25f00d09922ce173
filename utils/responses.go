package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
)

// SuccessResponse структура для успешных ответов
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Success создает успешный JSON ответ
func Success(c *fiber.Ctx, status int, data interface{}, message ...string) error {
	response := SuccessResponse{
		Success: true,
		Data:    data,
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	return c.Status(status).JSON(response)
}

// Created отправляет ответ 201 Created
func Created(c *fiber.Ctx, data interface{}, message ...string) error {
	return Success(c, fiber.StatusCreated, data, message...)
}

// Error writes the JSON error envelope. The status and the machine-checkable
// code come from the error's taxonomy kind; anything outside the taxonomy is
// reported as an internal error without leaking its cause.
func Error(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   apperr.Code(err),
		Message: message,
	})
}

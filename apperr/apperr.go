// Package apperr defines the error taxonomy shared by all services. Every
// failure a handler can return is an *Error carrying a kind (which fixes the
// HTTP status) and a machine-checkable code.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// Error codes returned in the "error" field of failure responses.
const (
	CodeMissingField       = "missing_field"
	CodeInvalidBody        = "invalid_body"
	CodeDuplicateUsername  = "duplicate_username"
	CodeDuplicateQuiz      = "duplicate_quiz"
	CodeInvalidCredentials = "invalid_credentials"
	CodeTokenExpired       = "token_expired"
	CodeInvalidSignature   = "invalid_signature"
	CodeMalformedToken     = "malformed_token"
	CodeForbiddenRole      = "forbidden_role"
	CodeInvalidOptionCount = "invalid_option_count"
	CodeInvalidAnswerIndex = "invalid_answer_index"
	CodeQuizNotFound       = "quiz_not_found"
	CodeInternal           = "internal"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// MissingField reports a required request field that was not provided.
func MissingField(field string) *Error {
	return New(KindValidation, CodeMissingField, fmt.Sprintf("%s is required", field))
}

// Internal wraps an unexpected failure. The cause stays available for logs
// via Unwrap but never reaches the client message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal server error", cause: err}
}

// Code extracts the machine-checkable code from an error, falling back to
// the internal code for anything outside the taxonomy.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the response status for its kind. Conflicts
// map to 400 to keep the wire behavior of the previous API version.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindConflict:
		return fiber.StatusBadRequest
	case KindAuthentication:
		return fiber.StatusUnauthorized
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

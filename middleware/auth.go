package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/auth"
	"github.com/Alexander2005-rgb/Quiz-application/utils"
)

// claimsKey is the Locals slot the auth middleware fills for downstream
// handlers.
const claimsKey = "claims"

// AuthMiddleware verifies the bearer token and stores its claims in Locals.
// Any failure ends the request here: no protected handler runs without
// valid claims.
func AuthMiddleware(authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.Error(c, apperr.New(apperr.KindAuthentication, apperr.CodeMalformedToken, "access token required"))
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.Authenticate(token)
		if err != nil {
			return utils.Error(c, err)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// AdminMiddleware rejects authenticated requests whose claims lack the
// admin role. Must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.AuthorizeAdmin(Claims(c)); err != nil {
			return utils.Error(c, err)
		}
		return c.Next()
	}
}

// Claims returns the verified token claims for the request, or nil when the
// auth middleware did not run.
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}

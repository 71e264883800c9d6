package middleware

import (
	"strings"

	"tilemart/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates the seller mutation endpoints. The stub does not
// issue verifiable tokens, so presence of a bearer token is all it checks.
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireBearer rejects requests without an Authorization: Bearer header.
func (m *AuthMiddleware) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "missing bearer token")
		}

		return next(c)
	}
}

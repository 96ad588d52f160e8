package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"provalab/internal/auth"
)

// JWTAuth resolves the bearer token into an authenticated user id before
// any protected handler runs. Handlers read the id from c.Get("user_id").
func JWTAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := tokens.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			c.Set("user_id", userID)

			return next(c)
		}
	}
}

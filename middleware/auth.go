package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/provision-store/provision-backend-go/utils"
)

// Auth verifies the bearer token on protected routes. A missing or
// malformed Authorization header is 401; a token that fails verification
// (bad signature or expired) is 403. The decoded claims and the acting
// user id are stored on the request context.
func Auth(jwtManager *utils.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access token required"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access token required"})
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Invalid or expired token"})
			}

			c.Set("claims", claims)
			c.Set("userID", claims.UserID)
			return next(c)
		}
	}
}

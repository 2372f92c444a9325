package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/drawdesk/drawdesk/internal/pkg/jwt"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/utils"
)

// JWTAuthMiddleware creates a middleware that requires a valid bearer
// session token on every request it guards.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			email, ok := (*claims)["email"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing email claim")
			}

			c.Set("admin_email", fmt.Sprintf("%v", email))
			return next(c)
		}
	}
}

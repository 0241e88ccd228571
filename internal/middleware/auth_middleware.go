package middleware

import (
	"net/http"

	"smart-life-agent/internal/handler"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware checks if the user is authenticated
func AuthMiddleware(authHandler *handler.AuthHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := authHandler.GetCurrentUser(c); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}
			return next(c)
		}
	}
}

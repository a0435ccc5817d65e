package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
)

// AdminRoleGuard rejects callers whose resolved role is not ADMIN.
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return errorJSON(c, http.StatusUnauthorized, apperr.CodeUnauthorized, "unauthorized")
			}

			if role != string(model.RoleAdmin) {
				return errorJSON(c, http.StatusForbidden, apperr.CodeForbidden, "admin only")
			}

			return next(c)
		}
	}
}

// IsAdmin reports whether the current request carries an admin identity.
func IsAdmin(c echo.Context) bool {
	role, _ := c.Get(CtxUserRoleKey).(string)
	return role == string(model.RoleAdmin)
}

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

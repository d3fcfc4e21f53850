package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/ledger/internal/pkg/jwt"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/utils"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware validates the bearer token and stores the caller identity in the context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			principal, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, principal.ID)
			c.Set(ContextUserRole, principal.Role)
			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not listed
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Forbidden resource")
		}
	}
}

// GetPrincipal returns the caller set by JWTAuthMiddleware
func GetPrincipal(c echo.Context) (models.Principal, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	if !ok {
		return models.Principal{}, false
	}
	role, ok := c.Get(ContextUserRole).(models.Role)
	if !ok {
		return models.Principal{}, false
	}
	return models.Principal{ID: id, Role: role}, true
}

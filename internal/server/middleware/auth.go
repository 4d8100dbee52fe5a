package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/actor"
)

// SessionAuth resolves the bearer token to a session actor and stores it on
// the request context for downstream handlers.
func SessionAuth(auth *usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			a, ok := auth.Validate(token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			ctx := actor.With(c.Request().Context(), a)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// AdminOnly rejects requests whose actor is not the admin. Must run after
// SessionAuth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, ok := actor.From(c.Request().Context())
			if !ok || !a.Admin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// ClientOnly rejects requests whose actor is not a client. Must run after
// SessionAuth.
func ClientOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, ok := actor.From(c.Request().Context())
			if !ok || a.Admin || a.ClientID == "" {
				return echo.NewHTTPError(http.StatusForbidden, "client access required")
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}

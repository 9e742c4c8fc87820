package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/auth"
)

// SessionKey is where RequireAdmin stores the verified session in the echo
// context. Handlers read it explicitly rather than from ambient state.
const SessionKey = "session"

// RequireAdmin gates the admin console: missing/invalid tokens get 401,
// authenticated non-admins get 403.
func RequireAdmin(sessions auth.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			session, err := sessions.Verify(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "auth service unavailable")
			}
			if !session.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// SessionFromContext returns the session RequireAdmin stored, or nil on
// ungated routes.
func SessionFromContext(c echo.Context) *auth.Session {
	s, _ := c.Get(SessionKey).(*auth.Session)
	return s
}

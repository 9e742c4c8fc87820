package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSessions struct {
	verifyFn func(ctx context.Context, token string) (*auth.Session, error)
}

func (m *mockSessions) Verify(ctx context.Context, token string) (*auth.Session, error) {
	return m.verifyFn(ctx, token)
}

func runGate(t *testing.T, sessions auth.Sessions, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/packages", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		session := SessionFromContext(c)
		require.NotNil(t, session)
		return c.NoContent(http.StatusOK)
	}
	err := RequireAdmin(sessions)(next)(c)
	return rec, err
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	sessions := &mockSessions{
		verifyFn: func(ctx context.Context, token string) (*auth.Session, error) {
			t.Fatal("Verify should not be called without a token")
			return nil, nil
		},
	}

	_, err := runGate(t, sessions, "")

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	sessions := &mockSessions{
		verifyFn: func(ctx context.Context, token string) (*auth.Session, error) {
			return nil, auth.ErrInvalidToken
		},
	}

	_, err := runGate(t, sessions, "Bearer expired-token")

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	sessions := &mockSessions{
		verifyFn: func(ctx context.Context, token string) (*auth.Session, error) {
			return &auth.Session{UserID: "u1", Email: "user@example.com"}, nil
		},
	}

	_, err := runGate(t, sessions, "Bearer valid-token")

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAdmin_AdminPassesWithSession(t *testing.T) {
	sessions := &mockSessions{
		verifyFn: func(ctx context.Context, token string) (*auth.Session, error) {
			assert.Equal(t, "admin-token", token)
			return &auth.Session{UserID: "u1", Email: "admin@strakotou.com", IsAdmin: true}, nil
		},
	}

	rec, err := runGate(t, sessions, "Bearer admin-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

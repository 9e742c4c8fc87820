package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Session is the verified identity behind a bearer token. IsAdmin gates the
// admin console.
type Session struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Sessions is the authentication capability. The hosted auth service owns
// users and tokens; this side only verifies.
type Sessions interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// HTTPSessions verifies tokens against the hosted auth service's user
// endpoint.
type HTTPSessions struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPSessions(baseURL, apiKey string) *HTTPSessions {
	return &HTTPSessions{baseURL: baseURL, apiKey: apiKey, client: http.DefaultClient}
}

func (s *HTTPSessions) Verify(ctx context.Context, token string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify token: auth service returned %d", resp.StatusCode)
	}

	var payload struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		AppMetadata struct {
			Role string `json:"role"`
		} `json:"app_metadata"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}

	return &Session{
		UserID:  payload.ID,
		Email:   payload.Email,
		IsAdmin: payload.AppMetadata.Role == "admin",
	}, nil
}

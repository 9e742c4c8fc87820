package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

// ObjectStore is the object-storage capability: uploads admin media and
// resolves stored keys to public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error
	PublicURL(key string) string
}

// HTTPStore talks to a hosted storage service over its REST API
// (POST /object/{bucket}/{key}; public reads at /object/public/{bucket}/{key}).
type HTTPStore struct {
	baseURL string
	bucket  string
	apiKey  string
	client  *http.Client
}

func NewHTTPStore(baseURL, bucket, apiKey string) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		bucket:  bucket,
		apiKey:  apiKey,
		client:  http.DefaultClient,
	}
}

func (s *HTTPStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) error {
	endpoint := fmt.Sprintf("%s/object/%s/%s", s.baseURL, s.bucket, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("upload %s: storage returned %d", key, resp.StatusCode)
	}

	log.Printf("[Storage] uploaded %s/%s", s.bucket, key)
	return nil
}

func (s *HTTPStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, s.bucket, url.PathEscape(key))
}

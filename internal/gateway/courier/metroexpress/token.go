package metroexpress

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fulfillment/internal/gateway/courier/httpclient"
)

// обновляем токен заранее, чтобы он не истек посреди запроса
const tokenSkew = 30 * time.Second

type tokenSource struct {
	client       *httpclient.Client
	clientID     string
	clientSecret string
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiresAt.Add(-tokenSkew)) {
		return s.token, nil
	}

	req := tokenRequest{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		GrantType:    "client_credentials",
	}

	var resp tokenResponse
	if err := s.client.Do(ctx, http.MethodPost, "/oauth/token", req, &resp); err != nil {
		return "", fmt.Errorf("metroexpress issue token: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("metroexpress issue token: %w", s.client.Reject("empty access token"))
	}

	s.token = resp.AccessToken
	s.expiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	return s.token, nil
}

func (s *tokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
}

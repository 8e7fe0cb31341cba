package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devconnect/backend/config"
)

const githubCacheTTL = 10 * time.Minute

// GithubService fetches a user's most recent public repositories from the
// GitHub API. Successful responses are cached in Redis when a client is
// available; cache failures never fail the request.
type GithubService struct {
	clientID string
	secret   string
	client   *http.Client
	cache    *redis.Client
	baseURL  string
}

func NewGithubService(cfg *config.Config, cache *redis.Client) *GithubService {
	return &GithubService{
		clientID: cfg.GithubClientID,
		secret:   cfg.GithubSecret,
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cache,
		baseURL:  "https://api.github.com",
	}
}

// Repos returns the raw JSON list of the user's 5 most recent public
// repos. A non-200 from GitHub maps to ErrNotFound.
func (s *GithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	cacheKey := "github:repos:" + username
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			return cached, nil
		}
	}

	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if s.clientID != "" {
		q.Set("client_id", s.clientID)
		q.Set("client_secret", s.secret)
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", s.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect-backend")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("github returned invalid JSON")
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, body, githubCacheTTL)
	}

	return body, nil
}

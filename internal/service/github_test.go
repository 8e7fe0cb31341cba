package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/config"
)

func TestGithubReposPassthrough(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"devconnect"}]`))
	}))
	defer srv.Close()

	gh := NewGithubService(&config.Config{}, nil)
	gh.baseURL = srv.URL

	repos, err := gh.Repos(context.Background(), "janedoe")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"devconnect"}]`, string(repos))
	assert.Equal(t, "/users/janedoe/repos", gotPath)
}

func TestGithubReposUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	gh := NewGithubService(&config.Config{}, nil)
	gh.baseURL = srv.URL

	_, err := gh.Repos(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

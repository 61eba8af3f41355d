package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points an APIClient at a local test server.
func newTestClient(t *testing.T, handler http.Handler) (*APIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewAPIClient(Options{MaxRetries: 2, RetryDelay: time.Millisecond})
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.api.BaseURL = base
	client.anon.BaseURL = base
	return client, server
}

func TestRepoInfo(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/tool", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name": "tool", "html_url": "https://github.com/owner/tool", "description": "a tool"}`)
	}))

	info, err := client.RepoInfo(context.Background(), "owner", "tool")
	require.NoError(t, err)
	assert.Equal(t, "tool", info.GetName())
	assert.Equal(t, "a tool", info.GetDescription())
}

func TestLatestReleaseNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))

	_, err := client.LatestRelease(context.Background(), "owner", "norelease")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWithRetryRecovers(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, `{"message": "boom"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tag_name": "v1.2.3", "assets": []}`)
	}))

	release, err := client.LatestRelease(context.Background(), "owner", "tool")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "v1.2.3", release.GetTagName())
}

func TestFetchRaw(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/script":
			fmt.Fprint(w, "#!/bin/bash\necho hello\n")
		default:
			http.NotFound(w, r)
		}
	}))

	content, err := client.FetchRaw(context.Background(), server.URL+"/script", 10)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bas", content)

	_, err = client.FetchRaw(context.Background(), server.URL+"/missing", 10)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRateLimitTracking(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "4242")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name": "tool"}`)
	}))

	assert.Equal(t, -1, client.RateLimit())

	_, err := client.RepoInfo(context.Background(), "owner", "tool")
	require.NoError(t, err)
	assert.Equal(t, 4242, client.RateLimit())
}

func TestGistUsesAnonymousClient(t *testing.T) {
	var sawAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			sawAuth = true
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "abc123", "files": {}}`)
	}))

	_, err := client.Gist(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

var _ Client = (*APIClient)(nil)

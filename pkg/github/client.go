// Package github wraps the GitHub REST API for manifest generation: repository
// metadata, latest-release listings and gist contents, with retries and an
// optional on-disk response cache.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	gh "github.com/google/go-github/v32/github"
	"github.com/miguelmota/go-filecache"
	"golang.org/x/oauth2"

	"github.com/wenget/bucketgen/internal/logger"
	"github.com/wenget/bucketgen/pkg/errors"
)

const userAgent = "wenget-bucketgen/1.0"

// ErrNotFound is returned for repositories, releases or gists that do not
// exist or are not visible with the current credentials.
var ErrNotFound = fmt.Errorf("resource not found")

// Options configures the API client.
type Options struct {
	// Token is a GitHub personal access token. Empty means unauthenticated
	// (60 requests/hour).
	Token string
	// MaxRetries is the number of attempts per request (minimum 1).
	MaxRetries int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
	// CacheTTL enables on-disk caching of release listings when positive.
	CacheTTL time.Duration
}

// APIClient is the production Client backed by go-github.
type APIClient struct {
	api  *gh.Client
	anon *gh.Client
	http *http.Client

	maxRetries int
	retryDelay time.Duration
	cacheTTL   time.Duration

	mu       sync.Mutex
	lastRate gh.Rate
	haveRate bool
}

// NewAPIClient creates a client. With a token, authenticated requests go
// through an oauth2 transport; gists always use the anonymous client.
func NewAPIClient(opts Options) *APIClient {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	authed := httpClient
	if opts.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		authed = oauth2.NewClient(context.Background(), src)
		authed.Timeout = 30 * time.Second
	}

	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	return &APIClient{
		api:        gh.NewClient(authed),
		anon:       gh.NewClient(httpClient),
		http:       httpClient,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		cacheTTL:   opts.CacheTTL,
	}
}

// RepoInfo implements Client.
func (c *APIClient) RepoInfo(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	var info *gh.Repository
	err := c.withRetry(ctx, fmt.Sprintf("repos/%s/%s", owner, repo), func() (*gh.Response, error) {
		var resp *gh.Response
		var err error
		info, resp, err = c.api.Repositories.Get(ctx, owner, repo)
		return resp, err
	})
	return info, err
}

// LatestRelease implements Client. Responses are cached on disk when a cache
// TTL is configured, so repeated runs against an unchanged bucket stay within
// rate limits.
func (c *APIClient) LatestRelease(ctx context.Context, owner, repo string) (*gh.RepositoryRelease, error) {
	cacheKey := "bucketgen/release/" + owner + "/" + repo

	if c.cacheTTL > 0 {
		var cached gh.RepositoryRelease
		if found, _ := filecache.Get(cacheKey, &cached); found {
			logger.Debug("release cache hit", logger.Fields{"repo": owner + "/" + repo})
			return &cached, nil
		}
	}

	var release *gh.RepositoryRelease
	err := c.withRetry(ctx, fmt.Sprintf("repos/%s/%s/releases/latest", owner, repo), func() (*gh.Response, error) {
		var resp *gh.Response
		var err error
		release, resp, err = c.api.Repositories.GetLatestRelease(ctx, owner, repo)
		return resp, err
	})
	if err != nil {
		return nil, err
	}

	if c.cacheTTL > 0 {
		if err := filecache.Set(cacheKey, release, c.cacheTTL); err != nil {
			logger.Debug("release cache write failed", logger.Fields{"error": err})
		}
	}
	return release, nil
}

// Gist implements Client.
func (c *APIClient) Gist(ctx context.Context, id string) (*gh.Gist, error) {
	var gist *gh.Gist
	err := c.withRetry(ctx, "gists/"+id, func() (*gh.Response, error) {
		var resp *gh.Response
		var err error
		gist, resp, err = c.anon.Gists.Get(ctx, id)
		return resp, err
	})
	return gist, err
}

// FetchRaw implements Client.
func (c *APIClient) FetchRaw(ctx context.Context, url string, limit int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.Wrapf(ErrNotFound, "%s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}
	return string(data), nil
}

// RateLimit implements Client.
func (c *APIClient) RateLimit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.haveRate {
		return -1
	}
	return c.lastRate.Remaining
}

// withRetry runs an API call up to maxRetries times. Not-found responses fail
// immediately; rate-limit responses are logged and retried after the delay.
func (c *APIClient) withRetry(ctx context.Context, what string, call func() (*gh.Response, error)) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := call()
		if resp != nil {
			c.recordRate(resp.Rate)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return errors.Wrapf(ErrNotFound, "%s", what)
		}

		if _, ok := err.(*gh.RateLimitError); ok {
			logger.Warn("rate limit exceeded", logger.Fields{
				"endpoint":  what,
				"remaining": c.RateLimit(),
			})
		} else if _, ok := err.(*gh.AbuseRateLimitError); ok {
			logger.Warn("secondary rate limit hit", logger.Fields{"endpoint": what})
		} else {
			logger.Debug("api request failed", logger.Fields{
				"endpoint": what,
				"attempt":  attempt,
				"error":    err,
			})
		}

		if attempt == c.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	return errors.Wrapf(lastErr, "%s failed after %d attempts", what, c.maxRetries)
}

func (c *APIClient) recordRate(rate gh.Rate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastRate = rate
	c.haveRate = true
}

package github

import (
	"context"

	gh "github.com/google/go-github/v32/github"
)

// Client defines the hosting API operations the generator needs. The real
// implementation talks to the GitHub REST API; tests substitute a fake.
type Client interface {
	// RepoInfo fetches repository metadata (name, description, homepage,
	// license).
	RepoInfo(ctx context.Context, owner, repo string) (*gh.Repository, error)

	// LatestRelease fetches the most recent published release with its
	// assets.
	LatestRelease(ctx context.Context, owner, repo string) (*gh.RepositoryRelease, error)

	// Gist fetches a gist and its files by ID. Always unauthenticated:
	// workflow tokens cannot read gists.
	Gist(ctx context.Context, id string) (*gh.Gist, error)

	// FetchRaw downloads up to limit bytes from a raw URL, used for shebang
	// sniffing of extension-less scripts.
	FetchRaw(ctx context.Context, url string, limit int64) (string, error)

	// RateLimit returns the remaining request quota from the most recent API
	// response, or -1 if no authenticated request has been made yet.
	RateLimit() int
}

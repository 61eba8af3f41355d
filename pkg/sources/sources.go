// Package sources reads bucket source lists and classifies their URLs.
//
// A sources file is plain text: one URL per line, blank lines and '#'
// comments ignored. Package sources point at GitHub repositories; script
// sources point at gists or raw script URLs.
package sources

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/wenget/bucketgen/pkg/errors"
)

var (
	repoPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:/|$)`)

	gistPatterns = []*regexp.Regexp{
		regexp.MustCompile(`gist\.github\.com/[^/]+/([a-f0-9]+)`),
		regexp.MustCompile(`gist\.githubusercontent\.com/[^/]+/([a-f0-9]+)`),
	}

	rawRepoPattern = regexp.MustCompile(`raw\.githubusercontent\.com/([^/]+)/([^/]+)`)
)

// Load reads a sources file and returns its URLs in file order. A missing or
// empty path yields an empty list, matching the optional scripts file.
func Load(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(errors.ErrSourcesRead, "cannot open %s: %v", path, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrSourcesRead, "error reading %s: %v", path, err)
	}

	return urls, nil
}

// ParseRepoURL extracts owner and repository name from a GitHub URL,
// tolerating a trailing ".git" or extra path segments.
func ParseRepoURL(url string) (owner, repo string, ok bool) {
	match := repoPattern.FindStringSubmatch(url)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// ParseGistURL extracts the gist ID from a gist.github.com or
// gist.githubusercontent.com URL.
func ParseGistURL(url string) (string, bool) {
	for _, pattern := range gistPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// IsRawScriptURL reports whether the URL points directly at raw script
// content rather than a gist page.
func IsRawScriptURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "raw.githubusercontent.com") ||
		strings.HasPrefix(lower, "https://raw.")
}

// RepoFromRawURL recovers the repository home URL from a
// raw.githubusercontent.com URL when possible.
func RepoFromRawURL(url string) (string, bool) {
	match := rawRepoPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return "https://github.com/" + match[1] + "/" + match[2], true
}

// Filename returns the last path segment of a URL, the raw script's
// filename.
func Filename(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

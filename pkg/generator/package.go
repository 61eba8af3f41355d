package generator

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v32/github"
	version "github.com/hashicorp/go-version"

	"github.com/wenget/bucketgen/internal/logger"
	"github.com/wenget/bucketgen/pkg/detect"
	"github.com/wenget/bucketgen/pkg/errors"
	"github.com/wenget/bucketgen/pkg/manifest"
	"github.com/wenget/bucketgen/pkg/sources"
)

// buildPackage assembles one manifest package from a repository URL.
func (g *Generator) buildPackage(ctx context.Context, url string) (*manifest.Package, error) {
	owner, repo, ok := sources.ParseRepoURL(url)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidURL, "%s", url)
	}

	info, err := g.client.RepoInfo(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	release, err := g.client.LatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, errors.Wrapf(err, "no releases found for %s/%s", owner, repo)
	}

	platforms := selectAssets(release.Assets)
	if len(platforms) == 0 {
		return nil, errors.Wrapf(errSkipped, "no binary assets found for %s/%s", owner, repo)
	}

	pkg := &manifest.Package{
		Name:        info.GetName(),
		Description: info.GetDescription(),
		Repo:        info.GetHTMLURL(),
		Version:     normalizeVersion(release.GetTagName()),
		Platforms:   platforms,
	}
	if info.Homepage != nil && *info.Homepage != "" {
		pkg.Homepage = info.Homepage
	}
	if license := info.GetLicense(); license != nil && license.GetSPDXID() != "" {
		spdx := license.GetSPDXID()
		pkg.License = &spdx
	}
	return pkg, nil
}

// selectAssets classifies release assets and keeps the best one per platform
// key. An asset replaces the current choice only with a strictly greater
// priority, so equal-priority duplicates keep the first-seen asset and the
// outcome is independent of listing order beyond tie-breaks.
func selectAssets(assets []*gh.ReleaseAsset) map[string]*manifest.Asset {
	selected := make(map[string]*manifest.Asset)
	priorities := make(map[string]int)

	for _, asset := range assets {
		name := asset.GetName()
		key, ok := detect.Detect(name)
		if !ok {
			logger.Debug("asset not classifiable", logger.Fields{"asset": name})
			continue
		}

		priority := detect.Priority(name, key)
		if priority <= priorities[key] {
			continue
		}
		selected[key] = &manifest.Asset{
			URL:  asset.GetBrowserDownloadURL(),
			Size: int64(asset.GetSize()),
		}
		priorities[key] = priority
	}

	return selected
}

// normalizeVersion turns a release tag into a manifest version: a leading
// "v" is stripped when the remainder parses as a version, otherwise the raw
// tag is kept as-is.
func normalizeVersion(tag string) string {
	if tag == "" {
		return ""
	}
	trimmed := strings.TrimPrefix(tag, "v")
	if v, err := version.NewVersion(trimmed); err == nil {
		return v.Original()
	}
	return tag
}

// Package generator assembles a bucket manifest from source lists: it fetches
// repository and release metadata, classifies release assets by platform,
// keeps the best asset per platform key and emits the final manifest.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/wenget/bucketgen/internal/logger"
	"github.com/wenget/bucketgen/pkg/errors"
	"github.com/wenget/bucketgen/pkg/github"
	"github.com/wenget/bucketgen/pkg/hooks"
	"github.com/wenget/bucketgen/pkg/manifest"
	"github.com/wenget/bucketgen/pkg/sources"
)

// rateLimitLogInterval is how many sources are processed between rate-limit
// status log lines.
const rateLimitLogInterval = 10

// Generator builds manifests from bucket source lists.
type Generator struct {
	client github.Client
	hooks  hooks.Manager

	// PaceDelay is the pause between successive source fetches, keeping
	// unauthenticated runs under the API rate limit.
	PaceDelay time.Duration
}

// New creates a Generator. The hook manager may be nil, meaning no curation
// hooks.
func New(client github.Client, hookManager hooks.Manager) *Generator {
	return &Generator{
		client: client,
		hooks:  hookManager,
	}
}

// Summary reports what a generation run produced.
type Summary struct {
	PackagesTotal   int
	PackagesWritten int
	ScriptsWritten  int
}

// Generate builds a manifest from the given source files and writes it to
// outputPath. Scripts are processed before packages so gist fetches (which
// cannot use the token) run while the rate-limit budget is still fresh.
func (g *Generator) Generate(ctx context.Context, repoSourcesPath, scriptSourcesPath, outputPath string) (*manifest.Manifest, *Summary, error) {
	scriptURLs, err := sources.Load(scriptSourcesPath)
	if err != nil {
		return nil, nil, err
	}
	repoURLs, err := sources.Load(repoSourcesPath)
	if err != nil {
		return nil, nil, err
	}
	if len(repoURLs) == 0 && len(scriptURLs) == 0 {
		return nil, nil, errors.Wrapf(errors.ErrNoSources, "%s and %s", repoSourcesPath, scriptSourcesPath)
	}

	m := manifest.New()
	summary := &Summary{PackagesTotal: len(repoURLs)}

	logger.Info("loaded sources", logger.Fields{
		"repositories": len(repoURLs),
		"scripts":      len(scriptURLs),
	})

	for i, url := range scriptURLs {
		g.pace(ctx, i)
		logger.Info("fetching scripts", logger.Fields{"source": url, "n": i + 1, "total": len(scriptURLs)})

		entries, err := g.buildScripts(ctx, url)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			logger.Warn("skipping script source", logger.Fields{"source": url, "error": err})
			continue
		}
		for _, s := range entries {
			keep, err := g.filterScript(s)
			if err != nil {
				return nil, nil, err
			}
			if !keep {
				logger.Debug("script excluded by hook", logger.Fields{"script": s.Name})
				continue
			}
			m.AddScript(s)
			summary.ScriptsWritten++
			logger.Info("script added", logger.Fields{"script": s.Name, "type": s.ScriptType})
		}
	}

	for i, url := range repoURLs {
		g.pace(ctx, i)
		logger.Info("fetching package", logger.Fields{"source": url, "n": i + 1, "total": len(repoURLs)})

		pkg, err := g.buildPackage(ctx, url)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			logger.Warn("skipping package source", logger.Fields{"source": url, "error": err})
			continue
		}
		keep, err := g.filterPackage(pkg)
		if err != nil {
			return nil, nil, err
		}
		if !keep {
			logger.Debug("package excluded by hook", logger.Fields{"package": pkg.Name})
			continue
		}
		m.AddPackage(pkg)
		summary.PackagesWritten++
		logger.Info("package added", logger.Fields{"package": pkg.Name, "platforms": len(pkg.Platforms)})
	}

	if err := m.WriteFile(outputPath); err != nil {
		return nil, nil, err
	}

	logger.Info("manifest written", logger.Fields{
		"path":     outputPath,
		"packages": summary.PackagesWritten,
		"scripts":  summary.ScriptsWritten,
	})
	logStats(m)

	return m, summary, nil
}

// pace runs before fetching source i. It sleeps between successive fetches
// whatever the previous source produced (a failed fetch spends quota all the
// same) and periodically logs the remaining rate-limit budget. No pause
// before the first source of a list.
func (g *Generator) pace(ctx context.Context, i int) {
	if i == 0 {
		return
	}
	if i%rateLimitLogInterval == 0 {
		if remaining := g.client.RateLimit(); remaining >= 0 {
			logger.Info("rate limit status", logger.Fields{"remaining": remaining})
		}
	}
	if g.PaceDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(g.PaceDelay):
	}
}

func (g *Generator) filterPackage(pkg *manifest.Package) (bool, error) {
	if g.hooks == nil {
		return true, nil
	}
	result, err := g.hooks.Execute(hooks.PackageFilter, hooks.Context{
		Name:        pkg.Name,
		Description: pkg.Description,
		Repo:        pkg.Repo,
		Platforms:   len(pkg.Platforms),
	})
	if err != nil {
		return false, err
	}
	if result.Description != "" {
		pkg.Description = result.Description
	}
	return !result.Skip, nil
}

func (g *Generator) filterScript(s *manifest.Script) (bool, error) {
	if g.hooks == nil {
		return true, nil
	}
	result, err := g.hooks.Execute(hooks.ScriptFilter, hooks.Context{
		Name:        s.Name,
		Description: s.Description,
		Repo:        s.Repo,
		ScriptType:  s.ScriptType,
	})
	if err != nil {
		return false, err
	}
	if result.Description != "" {
		s.Description = result.Description
	}
	return !result.Skip, nil
}

func logStats(m *manifest.Manifest) {
	for key, count := range m.PlatformStats() {
		logger.Debug("platform coverage", logger.Fields{"platform": key, "packages": count})
	}
	for scriptType, count := range m.ScriptTypeStats() {
		logger.Debug("script types", logger.Fields{"type": scriptType, "scripts": count})
	}
}

// errSkipped marks sources that produced nothing useful; callers log and move
// on.
var errSkipped = fmt.Errorf("source skipped")

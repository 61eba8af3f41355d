package generator

import (
	"context"
	"sort"

	gh "github.com/google/go-github/v32/github"

	"github.com/wenget/bucketgen/internal/logger"
	"github.com/wenget/bucketgen/pkg/errors"
	"github.com/wenget/bucketgen/pkg/manifest"
	"github.com/wenget/bucketgen/pkg/script"
	"github.com/wenget/bucketgen/pkg/sources"
)

// shebangSniffLimit bounds how much of a raw script is fetched for type
// detection.
const shebangSniffLimit = 1024

// buildScripts expands one script source URL into manifest script entries: a
// gist yields one entry per script-typed file, a raw URL yields one entry.
func (g *Generator) buildScripts(ctx context.Context, url string) ([]*manifest.Script, error) {
	if sources.IsRawScriptURL(url) {
		return g.buildRawScript(ctx, url)
	}
	return g.buildGistScripts(ctx, url)
}

func (g *Generator) buildRawScript(ctx context.Context, url string) ([]*manifest.Script, error) {
	filename := sources.Filename(url)

	scriptType, ok := script.TypeFromFilename(filename)
	if !ok {
		// No recognizable extension; fetch the head of the file and look
		// for a shebang.
		logger.Debug("no extension, checking shebang", logger.Fields{"file": filename})
		content, err := g.client.FetchRaw(ctx, url, shebangSniffLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "shebang detection failed for %s", url)
		}
		scriptType, ok = script.TypeFromShebang(content)
		if !ok {
			return nil, errors.Wrapf(errSkipped, "cannot detect script type of %s", url)
		}
	}

	repo := url
	if repoURL, ok := sources.RepoFromRawURL(url); ok {
		repo = repoURL
	}

	return []*manifest.Script{{
		Name:        script.StripExtension(filename),
		Description: filename + " from " + repo,
		URL:         url,
		ScriptType:  scriptType,
		Repo:        repo,
	}}, nil
}

func (g *Generator) buildGistScripts(ctx context.Context, url string) ([]*manifest.Script, error) {
	gistID, ok := sources.ParseGistURL(url)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidGist, "%s", url)
	}

	gist, err := g.client.Gist(ctx, gistID)
	if err != nil {
		return nil, err
	}

	// Map iteration order would leak into the manifest; keep gist files
	// sorted by name.
	filenames := make([]string, 0, len(gist.Files))
	for filename := range gist.Files {
		filenames = append(filenames, string(filename))
	}
	sort.Strings(filenames)

	var entries []*manifest.Script
	for _, name := range filenames {
		file := gist.Files[gh.GistFilename(name)]
		scriptType, ok := script.TypeFromFilename(name)
		if !ok {
			logger.Debug("skipping non-script gist file", logger.Fields{"file": name})
			continue
		}

		description := gist.GetDescription()
		if description == "" {
			description = name + " from gist"
		}

		entries = append(entries, &manifest.Script{
			Name:        script.StripExtension(name),
			Description: description,
			URL:         file.GetRawURL(),
			ScriptType:  scriptType,
			Repo:        gist.GetHTMLURL(),
		})
	}

	return entries, nil
}

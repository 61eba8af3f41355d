package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wenget/bucketgen/pkg/generator"
	"github.com/wenget/bucketgen/pkg/github"
	"github.com/wenget/bucketgen/pkg/hooks"
)

// NewGenerateCmd creates the command that builds manifest.json from source
// lists.
func NewGenerateCmd() *cobra.Command {
	var (
		scriptsFile string
		outputFile  string
		token       string
		noHooks     bool
	)

	cmd := &cobra.Command{
		Use:   "generate [sources-file]",
		Short: "Generate a bucket manifest from source lists",
		Long: `Generate manifest.json from plain-text source lists.

The sources file lists GitHub repository URLs, one per line; the optional
scripts file lists Gist or raw script URLs. Release assets are classified by
platform and the best asset per platform is recorded in the manifest.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repoSources := cfg.RepoSources
			if len(args) > 0 {
				repoSources = args[0]
			}
			if scriptsFile != "" {
				cfg.ScriptSources = scriptsFile
			}
			if outputFile != "" {
				cfg.Output = outputFile
			}
			if token != "" {
				cfg.GitHubToken = token
			}

			client := github.NewAPIClient(github.Options{
				Token:      cfg.Token(),
				MaxRetries: cfg.MaxRetries,
				RetryDelay: cfg.RetryDelay(),
				CacheTTL:   cfg.CacheTTL(),
			})

			var hookManager hooks.Manager
			if !noHooks {
				executor := hooks.NewTengoExecutor()
				if err := hooks.LoadFromDir(executor, filepath.Dir(repoSources)); err != nil {
					return err
				}
				hookManager = executor
			}

			gen := generator.New(client, hookManager)
			gen.PaceDelay = cfg.RateLimitDelay()

			_, summary, err := gen.Generate(cmd.Context(), repoSources, cfg.ScriptSources, cfg.Output)
			if err != nil {
				return fmt.Errorf("failed to generate manifest: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s: %d/%d packages, %d scripts\n",
				cfg.Output, summary.PackagesWritten, summary.PackagesTotal, summary.ScriptsWritten)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptsFile, "scripts", "s", "",
		"source file containing gist/raw script URLs")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"output manifest file")
	cmd.Flags().StringVarP(&token, "token", "t", "",
		"GitHub personal access token (or use GITHUB_TOKEN env var)")
	cmd.Flags().BoolVar(&noHooks, "no-hooks", false,
		"ignore curation hook scripts next to the sources file")

	cmd.Example = `  # Default file names (sources_repos.txt, sources_scripts.txt)
  bucketgen generate

  # Explicit sources and output
  bucketgen generate my_repos.txt -s my_scripts.txt -o bucket/manifest.json

  # Authenticated run
  bucketgen generate -t ghp_xxxx`

	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wenget/bucketgen/internal/cli"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucketgen",
		Short: "Generate wenget bucket manifests",
		Long: `bucketgen builds a wenget bucket manifest.json from source lists:
- packages: GitHub repositories with binary release assets
- scripts: Gists and raw script URLs

Release assets are classified by platform and architecture; the best asset
per platform (static builds preferred on Linux, msvc on Windows) ends up in
the manifest.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: bucketgen.yaml if present)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain text log output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewGenerateCmd(),
		cli.NewValidateCmd(),
		cli.NewServeCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}

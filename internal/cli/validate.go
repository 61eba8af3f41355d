package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenget/bucketgen/pkg/manifest"
)

// NewValidateCmd creates the command that checks a manifest against the
// bucket schema.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest-file>",
		Short: "Validate a bucket manifest against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			if err := manifest.ValidateFile(args[0]); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}

	return cmd
}

package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bezel-catalog",
		Short: "Device bezel asset cataloging with automatic viewport detection",
		Long: `bezel-catalog extracts structured metadata for a tree of device bezel images.

For every asset it detects the screen viewport (the transparent aperture
enclosed by the opaque bezel) purely from pixel transparency and emits one
flattened metadata record, gathered into a single sorted catalog.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// Package cli wires the hub commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hub/internal/config"
	"github.com/MrSnakeDoc/hub/internal/version"
)

// NewRootCommand builds the hub command tree. Running it without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "hub",
		Short:   "CIDB dashboard hub",
		Long:    "Hub serves a single page linking to every CIDB dashboard, with a search box\nthat narrows the cards as you type.",
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFiles()
		},
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newListCommand(), newVersionCommand())
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

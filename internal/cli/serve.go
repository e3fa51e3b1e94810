package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hub/internal/app"
	"github.com/MrSnakeDoc/hub/internal/config"
	"github.com/MrSnakeDoc/hub/internal/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = loggerClient.Sync() }()

	a, err := app.New(cfg, loggerClient)
	if err != nil {
		return err
	}
	return a.Run()
}

package main

import (
	"ossutracker/internal/config"
	"ossutracker/internal/ossu"
	"ossutracker/internal/router"
	"ossutracker/internal/server"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the course tracker API server",
	Long: `Start the HTTP API server.

Endpoints are served under /api; GET / is a health check.

Examples:
  ossutracker serve                  # Start on the configured port (default 8001)
  ossutracker serve --port 3000      # Start on a custom port
  OSSU_STORE=memory ossutracker serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		repo, closeRepo, err := openRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		fetcher := ossu.NewFetcher(cfg.CurriculumURL, cfg.FetchTimeout, cfg.FetchAttempts)
		env := &router.Env{
			Repository: repo,
			Syncer:     ossu.NewSyncer(fetcher, repo),
			UserID:     cfg.DefaultUserID,
		}

		return server.Start(cfg, env)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
}

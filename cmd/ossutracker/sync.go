package main

import (
	"ossutracker/internal/config"
	"ossutracker/internal/ossu"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the course catalogue with the OSSU curriculum",
	Long: `Download the OSSU curriculum README, parse it, and upsert every course into
the configured store. Courses are matched on title and category.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		repo, closeRepo, err := openRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		fetcher := ossu.NewFetcher(cfg.CurriculumURL, cfg.FetchTimeout, cfg.FetchAttempts)
		result, err := ossu.NewSyncer(fetcher, repo).Sync(ctx)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), outputFormat, result)
	},
}

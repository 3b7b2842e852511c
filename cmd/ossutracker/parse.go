package main

import (
	"io"
	"os"

	"ossutracker/internal/config"
	"ossutracker/internal/curriculum"
	"ossutracker/internal/ossu"

	"github.com/spf13/cobra"
)

var parseFetch bool

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a curriculum README and print its courses",
	Long: `Parse an OSSU curriculum README and print the extracted courses.

The README is read from the given file, from stdin when the argument is "-"
or missing, or downloaded from the configured curriculum URL with --fetch.

Examples:
  ossutracker parse README.md
  cat README.md | ossutracker parse -o json
  ossutracker parse --fetch`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var courses []curriculum.ParsedCourse

		switch {
		case parseFetch:
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			document, err := ossu.NewFetcher(cfg.CurriculumURL, cfg.FetchTimeout, cfg.FetchAttempts).Fetch(cmd.Context())
			if err != nil {
				return err
			}
			courses = curriculum.Parse(document)
		default:
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			var err error
			if courses, err = curriculum.ParseReader(r); err != nil {
				return err
			}
		}

		return writeOutput(cmd.OutOrStdout(), outputFormat, courses)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseFetch, "fetch", false, "download the README from the configured curriculum URL")
}

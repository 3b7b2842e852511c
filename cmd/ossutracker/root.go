package main

import (
	"flag"

	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ossutracker",
	Short: "Track progress through the OSSU Computer Science curriculum",
	Long: `ossutracker keeps a catalogue of the courses in the OSSU Computer Science
curriculum and a learner's progress through them.

The course catalogue is built by parsing the curriculum README:
  - Sections are classified into curriculum categories
  - Course tables are read into course records
  - Each course gets its section's topics and a generated description`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (settings can also be set with OSSU_* environment variables)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return flag.CommandLine.Parse(nil)
	}

	rootCmd.AddCommand(serveCmd, parseCmd, syncCmd)
}

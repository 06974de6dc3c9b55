package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pddl",
	Short: "Parse, validate, and print PDDL documents",
	Long: `pddl is a front end for the Planning Domain Definition Language.

It parses domain, problem, and plan files into a structured form, checks
requirement flags against the supported subset (:strips and :typing), and
prints documents back as canonical PDDL, JSON, or YAML.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

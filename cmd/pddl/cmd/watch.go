package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plankit/pddl/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Re-parse PDDL files whenever they change",
	Long: `Watch files or directories and re-parse on every change.

Each changed .pddl file is parsed with the same kind detection as the
parse subcommand; the result is logged. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Strs("paths", args).Msg("watching")
	return watch.Watch(ctx, log, args, func(path string) error {
		_, err := parseFile(path)
		return err
	})
}

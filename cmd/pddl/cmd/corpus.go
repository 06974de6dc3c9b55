package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plankit/pddl/pkg/corpus"
)

var (
	corpusRepo string
	corpusDir  string
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Run the parser over the IPC benchmark collection",
	Long: `Parse every domain of the potassco/pddl-instances collection and
report a tally: parsed, rejected by the requirement gate (per flag), and
failed.

The collection is cloned on first use; point --dir at an existing
checkout to skip the clone.`,
	RunE: runCorpus,
}

func init() {
	corpusCmd.Flags().StringVar(&corpusRepo, "repo", corpus.DefaultRepoURL, "corpus repository URL")
	corpusCmd.Flags().StringVar(&corpusDir, "dir", "pddl-instances", "corpus checkout directory")
	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := os.Stat(corpusDir); os.IsNotExist(err) {
		log.Info().Str("repo", corpusRepo).Str("dir", corpusDir).Msg("cloning corpus")
		if err := corpus.Clone(ctx, corpusRepo, corpusDir, os.Stderr); err != nil {
			return err
		}
	}

	files, err := corpus.DomainFiles(corpusDir)
	if err != nil {
		return err
	}
	log.Info().Int("domains", len(files)).Msg("corpus enumerated")

	report, err := corpus.Run(ctx, log, files)
	if err != nil {
		return err
	}

	for flag, count := range report.Unsupported {
		log.Info().Str("requirement", flag.ToPDDL()).Int("count", count).Msg("rejected by gate")
	}
	for _, f := range report.Failures {
		log.Warn().Err(f.Err).Str("file", f.Path).Msg("failed")
	}
	log.Info().
		Int("total", report.Total).
		Int("parsed", report.Parsed).
		Int("rejected", report.Rejected()).
		Int("failed", len(report.Failures)).
		Msg("corpus run complete")
	return nil
}

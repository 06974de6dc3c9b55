package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plankit/pddl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pddl", pddl.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"os"

	"github.com/plankit/pddl/cmd/pddl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

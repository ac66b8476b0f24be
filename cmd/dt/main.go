package main

import (
	"fmt"
	"os"

	"github.com/Manav279/DailyTracker/internal/cli"
)

func main() {
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(cli.DefaultConfigLoader, factory.OpenAPI)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

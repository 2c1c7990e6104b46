// Package main is the entry point for the Mood Journal API server.
// Its sole responsibility is wiring dependencies together and dispatching
// the serve/migrate subcommands. No business logic belongs here.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "api",
		Short: "Mood Journal API server",
		// Running the bare binary starts the server, so `api` and
		// `api serve` behave identically in containers.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"github.com/spf13/cobra"
)

var MigrateCmd = cobra.Command{
	Use:   "migrate",
	Short: "Apply pending postgres schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		if postgresDriver == nil {
			logger.Fatal("migrate requires storage.backend = \"postgres\"")
		}

		if err := postgresDriver.Migrate(); err != nil {
			logger.Fatal("could not migrate:", err)
		}

		logger.Print("migrations applied")
	},
}

func init() {
	RootCmd.AddCommand(&MigrateCmd)
}

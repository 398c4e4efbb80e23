package main

import (
	"os"

	"github.com/spf13/cobra"

	"semql/cmd/semql/gateway"
	"semql/cmd/semql/index"
	"semql/cmd/semql/search"
	"semql/cmd/semql/similarity"
	"semql/internal/logger"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "semql",
		Short: "Semantic search for SQLite",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(index.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(similarity.Cmd)
	rootCmd.AddCommand(gateway.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

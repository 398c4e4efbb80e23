package index

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"semql/internal/app"
	"semql/internal/config"
	"semql/internal/store"
)

var Cmd = &cobra.Command{
	Use:   "index <file>...",
	Short: "Embed and store documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, provider, err := app.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		docs := store.NewDocumentStore(database, provider)
		var indexed, skipped int
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			_, added, err := docs.Add(cmd.Context(), path, string(content))
			if err != nil {
				return fmt.Errorf("indexing %s: %w", path, err)
			}
			if added {
				indexed++
			} else {
				skipped++
			}
		}

		slog.Info("indexing complete", "indexed", indexed, "skipped", skipped)
		return nil
	},
}

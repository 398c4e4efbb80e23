package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"semql/internal/app"
	"semql/internal/config"
	"semql/internal/store"
)

var limit int

var Cmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search indexed documents",
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

		searcher := store.NewHybridSearcher(database, provider,
			cfg.Search.VectorWeight, cfg.Search.FTSWeight)
		results, err := searcher.Search(cmd.Context(), strings.Join(args, " "), limit)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%.3f  %s\n       %s\n", r.Score, r.Source, firstLine(r.Content))
		}
		return nil
	},
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of results")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120] + "…"
	}
	return s
}

package gateway

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"semql/internal/app"
	"semql/internal/config"
	gw "semql/internal/gateway"
	"semql/internal/store"
	"semql/internal/trace"
	"semql/internal/vecsim"
)

var addr string

var Cmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the HTTP gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addr != "" {
			cfg.Gateway.Addr = addr
		}

		if cfg.Trace.Endpoint != "" {
			shutdown, err := trace.Init(cmd.Context(), trace.Config{
				Endpoint: cfg.Trace.Endpoint,
				URLPath:  cfg.Trace.URLPath,
				APIKey:   cfg.Trace.APIKey,
			})
			if err != nil {
				return fmt.Errorf("initializing tracing: %w", err)
			}
			defer shutdown(cmd.Context())
		}

		database, provider, err := app.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		searcher := store.NewHybridSearcher(database, provider,
			cfg.Search.VectorWeight, cfg.Search.FTSWeight)
		docs := store.NewDocumentStore(database, provider)

		srv := gw.NewServer(searcher, docs)
		slog.Info("starting gateway",
			"addr", cfg.Gateway.Addr,
			"kernel", vecsim.Implementation(),
			"embeddings", provider != nil,
		)
		return srv.ListenAndServe(cfg.Gateway.Addr)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "override gateway listen address")
}

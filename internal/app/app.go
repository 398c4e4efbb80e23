// Package app builds the shared pieces the CLI commands need: an open,
// migrated database and the configured embedding provider.
package app

import (
	"fmt"

	"semql/internal/config"
	"semql/internal/db"
	"semql/internal/embedding"
)

// Open opens the database from cfg and builds the embedding provider, or nil
// when embeddings are disabled (keyword-only mode).
func Open(cfg *config.Config) (*db.DB, embedding.Provider, error) {
	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}

	var provider embedding.Provider
	if cfg.Embedding.Enabled {
		provider = embedding.NewCachedProvider(
			embedding.NewOpenAI(
				cfg.Embedding.BaseURL,
				cfg.Embedding.APIKey,
				cfg.Embedding.Model,
				cfg.Embedding.Dimensions,
			),
			database,
			cfg.Embedding.CacheSize,
		)
	}
	return database, provider, nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Embedding EmbeddingConfig `toml:"embedding"`
	Search    SearchConfig    `toml:"search"`
	Gateway   GatewayConfig   `toml:"gateway"`
	DB        DBConfig        `toml:"db"`
	Trace     TraceConfig     `toml:"trace"`
}

type EmbeddingConfig struct {
	Enabled    bool   `toml:"enabled"`
	Model      string `toml:"model"`
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	Dimensions int    `toml:"dimensions"`
	CacheSize  int    `toml:"cache_size"`
}

type SearchConfig struct {
	VectorWeight float32 `toml:"vector_weight"`
	FTSWeight    float32 `toml:"fts_weight"`
}

type GatewayConfig struct {
	Addr string `toml:"addr"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

type TraceConfig struct {
	Endpoint string `toml:"endpoint"`
	URLPath  string `toml:"url_path"`
	APIKey   string `toml:"api_key"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Embedding: EmbeddingConfig{
			Enabled:   true,
			Model:     "text-embedding-3-small",
			CacheSize: 10000,
		},
		Search: SearchConfig{
			VectorWeight: 0.7,
			FTSWeight:    0.3,
		},
		Gateway: GatewayConfig{
			Addr: ":8585",
		},
		DB: DBConfig{
			Path: defaultDBPath(),
		},
	}

	path := configPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Env var beats the file for the one secret.
	if key := os.Getenv("SEMQL_API_KEY"); key != "" {
		cfg.Embedding.APIKey = key
	}

	return cfg, nil
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "semql", "config.toml")
}

func defaultDBPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, ".local", "share", "semql", "semql.db")
}

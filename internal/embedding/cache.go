package embedding

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"semql/internal/db"
)

// CachedProvider wraps a Provider with SHA-256 content-addressed caching in
// SQLite, so re-indexing unchanged documents never hits the embeddings API.
type CachedProvider struct {
	inner     Provider
	conn      *sql.DB
	cacheSize int
}

func NewCachedProvider(inner Provider, database *db.DB, cacheSize int) *CachedProvider {
	if cacheSize <= 0 {
		cacheSize = 10000
	}
	return &CachedProvider{
		inner:     inner,
		conn:      database.Conn(),
		cacheSize: cacheSize,
	}
}

func (c *CachedProvider) Model() string   { return c.inner.Model() }
func (c *CachedProvider) Dimensions() int { return c.inner.Dimensions() }

func (c *CachedProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := c.inner.Model()
	results := make([][]float32, len(texts))
	var misses []int // indices of texts not found in cache

	for i, text := range texts {
		cached, err := c.lookup(ctx, ContentHash(text), model)
		if err == nil {
			results[i] = BytesToFloat32s(cached)
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Debug("embedding cache lookup error", "error", err)
		}
		misses = append(misses, i)
	}

	if len(misses) == 0 {
		return results, nil
	}

	missTexts := make([]string, len(misses))
	for i, idx := range misses {
		missTexts[i] = texts[idx]
	}

	embeddings, err := c.inner.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}

	for i, idx := range misses {
		results[idx] = embeddings[i]
		if err := c.store(ctx, ContentHash(texts[idx]), model, Float32sToBytes(embeddings[i])); err != nil {
			slog.Debug("embedding cache store error", "error", err)
		}
	}

	// Prune if needed (best-effort).
	if err := c.prune(ctx); err != nil {
		slog.Debug("embedding cache prune error", "error", err)
	}

	return results, nil
}

func (c *CachedProvider) lookup(ctx context.Context, hash, model string) ([]byte, error) {
	var emb []byte
	err := c.conn.QueryRowContext(ctx,
		`SELECT embedding FROM embedding_cache WHERE content_hash = ? AND embed_model = ?`,
		hash, model,
	).Scan(&emb)
	return emb, err
}

func (c *CachedProvider) store(ctx context.Context, hash, model string, emb []byte) error {
	_, err := c.conn.ExecContext(ctx, `
		INSERT INTO embedding_cache (content_hash, embed_model, embedding)
		VALUES (?, ?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET
			embed_model = excluded.embed_model,
			embedding = excluded.embedding,
			created_at = CURRENT_TIMESTAMP
	`, hash, model, emb)
	return err
}

func (c *CachedProvider) prune(ctx context.Context) error {
	_, err := c.conn.ExecContext(ctx, `
		DELETE FROM embedding_cache WHERE content_hash NOT IN (
			SELECT content_hash FROM embedding_cache
			ORDER BY created_at DESC LIMIT ?
		)
	`, c.cacheSize)
	return err
}

// ContentHash is the cache key for a piece of text.
func ContentHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", h)
}

// Package store persists documents and their embeddings and ranks them with
// hybrid keyword + vector search. The vector leg runs inside SQLite via the
// cosine_similarity function, so scoring happens per row in the query engine
// rather than in Go.
package store

import (
	"context"
	"database/sql"
	"strings"

	"semql/internal/db"
	"semql/internal/embedding"
)

// maxChunkChars bounds the text sent to the embedder per chunk. Chunk
// vectors are mean-pooled into one document vector.
const maxChunkChars = 2000

// DocumentStore writes documents with optional embeddings.
type DocumentStore struct {
	conn     *sql.DB
	embedder embedding.Provider // nil = keyword-only index
}

func NewDocumentStore(database *db.DB, embedder embedding.Provider) *DocumentStore {
	return &DocumentStore{
		conn:     database.Conn(),
		embedder: embedder,
	}
}

// Add stores a document, embedding it when an embedder is configured.
// Content already present (by hash) is not re-indexed; the existing id is
// returned with added == false.
func (s *DocumentStore) Add(ctx context.Context, source, content string) (id int64, added bool, err error) {
	hash := embedding.ContentHash(content)

	var existing int64
	err = s.conn.QueryRowContext(ctx,
		`SELECT id FROM documents WHERE content_hash = ?`, hash,
	).Scan(&existing)
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, err
	}

	var embBytes []byte
	if s.embedder != nil {
		vec, err := s.embedContent(ctx, content)
		if err != nil {
			return 0, false, err
		}
		embBytes = embedding.Float32sToBytes(vec)
	}

	res, err := s.conn.ExecContext(ctx,
		`INSERT INTO documents (source, content, embedding, content_hash) VALUES (?, ?, ?, ?)`,
		source, content, embBytes, hash,
	)
	if err != nil {
		return 0, false, err
	}
	id, err = res.LastInsertId()
	return id, true, err
}

// Delete removes a document by ID.
func (s *DocumentStore) Delete(ctx context.Context, id int64) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return err
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	return n, err
}

// embedContent chunks long content, embeds every chunk in one provider call,
// and pools the chunk vectors into a single normalized document vector.
func (s *DocumentStore) embedContent(ctx context.Context, content string) ([]float32, error) {
	chunks := splitChunks(content, maxChunkChars)
	vecs, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, err
	}
	return embedding.NormalizeL2(embedding.MeanPool(vecs)), nil
}

// splitChunks splits content on blank lines and merges paragraphs until the
// size bound. A single oversized paragraph becomes its own chunk rather than
// being dropped.
func splitChunks(content string, maxChars int) []string {
	paras := strings.Split(content, "\n\n")
	var chunks []string
	var cur strings.Builder
	for _, p := range paras {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if cur.Len() > 0 && cur.Len()+len(p) > maxChars {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(p)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	if len(chunks) == 0 {
		chunks = []string{content}
	}
	return chunks
}

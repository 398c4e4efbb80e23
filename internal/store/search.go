package store

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"strings"

	"semql/internal/db"
	"semql/internal/embedding"
)

// SearchResult represents a single document match from hybrid search.
type SearchResult struct {
	DocumentID int64
	Source     string
	Content    string
	Score      float32
}

// HybridSearcher combines FTS5 keyword search with vector similarity ranked
// by the cosine_similarity SQL function.
type HybridSearcher struct {
	conn         *sql.DB
	embedder     embedding.Provider // nil = FTS5-only mode
	vectorWeight float32
	ftsWeight    float32
}

func NewHybridSearcher(database *db.DB, embedder embedding.Provider, vectorWeight, ftsWeight float32) *HybridSearcher {
	if embedder == nil {
		// FTS-only mode: all weight on FTS.
		ftsWeight = 1.0
		vectorWeight = 0.0
	}
	return &HybridSearcher{
		conn:         database.Conn(),
		embedder:     embedder,
		vectorWeight: vectorWeight,
		ftsWeight:    ftsWeight,
	}
}

// Search performs hybrid FTS5 + vector search, merging results.
func (h *HybridSearcher) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}

	type scored struct {
		id      int64
		source  string
		content string
		fts     float32
		vec     float32
	}
	merged := make(map[int64]*scored)

	// FTS5 keyword search.
	ftsResults, err := h.ftsSearch(ctx, query)
	if err != nil {
		slog.Debug("fts search error", "error", err)
	} else {
		for _, r := range ftsResults {
			merged[r.DocumentID] = &scored{
				id:      r.DocumentID,
				source:  r.Source,
				content: r.Content,
				fts:     r.Score,
			}
		}
	}

	// Vector search (if embedder available).
	if h.embedder != nil {
		vecResults, err := h.vectorSearch(ctx, query)
		if err != nil {
			slog.Debug("vector search error", "error", err)
		} else {
			for _, r := range vecResults {
				if s, ok := merged[r.DocumentID]; ok {
					s.vec = r.Score
				} else {
					merged[r.DocumentID] = &scored{
						id:      r.DocumentID,
						source:  r.Source,
						content: r.Content,
						vec:     r.Score,
					}
				}
			}
		}
	}

	// Compute final scores and sort.
	results := make([]SearchResult, 0, len(merged))
	for _, s := range merged {
		final := h.vectorWeight*s.vec + h.ftsWeight*s.fts
		results = append(results, SearchResult{
			DocumentID: s.id,
			Source:     s.source,
			Content:    s.content,
			Score:      final,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ftsSearch runs FTS5 MATCH query with BM25 scoring.
func (h *HybridSearcher) ftsSearch(ctx context.Context, query string) ([]SearchResult, error) {
	const q = `
		SELECT d.id, d.source, d.content, bm25(documents_fts) AS rank
		FROM documents_fts f
		JOIN documents d ON d.id = f.rowid
		WHERE documents_fts MATCH ?
		ORDER BY rank
		LIMIT 50
	`

	rows, err := h.conn.QueryContext(ctx, q, escapeFTS5Query(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type raw struct {
		id      int64
		source  string
		content string
		rank    float32
	}
	var raws []raw
	var minRank, maxRank float32
	first := true

	for rows.Next() {
		var r raw
		if err := rows.Scan(&r.id, &r.source, &r.content, &r.rank); err != nil {
			return nil, err
		}
		// BM25 returns negative scores (more negative = better match).
		r.rank = -r.rank
		if first || r.rank < minRank {
			minRank = r.rank
		}
		if first || r.rank > maxRank {
			maxRank = r.rank
		}
		first = false
		raws = append(raws, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Normalize to [0, 1].
	var results []SearchResult
	span := maxRank - minRank
	for _, r := range raws {
		var score float32
		if span > 0 {
			score = (r.rank - minRank) / span
		} else if len(raws) > 0 {
			score = 1.0
		}
		results = append(results, SearchResult{
			DocumentID: r.id,
			Source:     r.source,
			Content:    r.content,
			Score:      score,
		})
	}

	return results, nil
}

// vectorSearch embeds the query once, then lets SQLite score every stored
// embedding with cosine_similarity and return the best rows.
func (h *HybridSearcher) vectorSearch(ctx context.Context, query string) ([]SearchResult, error) {
	vecs, err := h.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, nil
	}
	queryVec := embedding.Float32sToBytes(vecs[0])

	const q = `
		SELECT id, source, content, cosine_similarity(embedding, ?) AS score
		FROM documents
		WHERE embedding IS NOT NULL
		ORDER BY score DESC
		LIMIT 50
	`

	rows, err := h.conn.QueryContext(ctx, q, queryVec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var score sql.NullFloat64
		if err := rows.Scan(&r.DocumentID, &r.Source, &r.Content, &score); err != nil {
			return nil, err
		}
		if !score.Valid || score.Float64 <= 0 {
			continue
		}
		r.Score = float32(score.Float64)
		results = append(results, r)
	}
	return results, rows.Err()
}

// escapeFTS5Query quotes each term in the query to prevent FTS5 syntax errors
// from special characters like ?, *, AND, OR, NOT, etc.
func escapeFTS5Query(query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return query
	}
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

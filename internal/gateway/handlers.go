package gateway

import (
	"encoding/json"
	"net/http"
)

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type searchResult struct {
	DocumentID int64   `json:"document_id"`
	Source     string  `json:"source"`
	Content    string  `json:"content"`
	Score      float32 `json:"score"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}

	results, err := s.searcher.Search(r.Context(), req.Query, req.Limit)
	if err != nil {
		http.Error(w, `{"error":"search failed"}`, http.StatusInternalServerError)
		return
	}

	out := make([]searchResult, len(results))
	for i, res := range results {
		out[i] = searchResult{
			DocumentID: res.DocumentID,
			Source:     res.Source,
			Content:    res.Content,
			Score:      res.Score,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"results": out})
}

type indexRequest struct {
	Documents []struct {
		Source  string `json:"source"`
		Content string `json:"content"`
	} `json:"documents"`
}

// handleIndex embeds and stores a batch of documents, streaming one SSE
// progress event per document so large batches report as they go.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		http.Error(w, `{"error":"documents are required"}`, http.StatusBadRequest)
		return
	}

	sse := NewSSEWriter(w)
	for i, doc := range req.Documents {
		if doc.Content == "" {
			sse.Send("error", map[string]any{"index": i, "error": "empty content"})
			continue
		}
		id, added, err := s.indexer.Add(r.Context(), doc.Source, doc.Content)
		if err != nil {
			sse.Send("error", map[string]any{"index": i, "error": err.Error()})
			continue
		}
		sse.Send("indexed", map[string]any{"index": i, "document_id": id, "added": added})
	}
	sse.Send("done", map[string]any{"count": len(req.Documents)})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

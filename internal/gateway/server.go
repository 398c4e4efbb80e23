// Package gateway exposes search and indexing over HTTP.
package gateway

import (
	"context"
	"net/http"

	"semql/internal/store"
)

// Searcher answers ranked queries.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]store.SearchResult, error)
}

// Indexer stores documents.
type Indexer interface {
	Add(ctx context.Context, source, content string) (id int64, added bool, err error)
}

type Server struct {
	searcher Searcher
	indexer  Indexer
	mux      *http.ServeMux
}

func NewServer(searcher Searcher, indexer Indexer) *Server {
	s := &Server{
		searcher: searcher,
		indexer:  indexer,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/search", s.handleSearch)
	s.mux.HandleFunc("POST /v1/documents", s.handleIndex)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

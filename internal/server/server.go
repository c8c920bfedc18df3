// Package web exposes the content store, contact inbox and enrichment queue
// as a JSON HTTP API.
package web

import (
	"context"
	"net/http"
	"time"

	"folio/internal/content"
	"folio/internal/inbox"
	"folio/internal/queue"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	store  *content.Store
	inbox  *inbox.Inbox
	queue  *queue.Queue
	logger *zap.Logger
	router *mux.Router
	server *http.Server
}

func NewServer(st *content.Store, ib *inbox.Inbox, q *queue.Queue, logger *zap.Logger) *Server {
	s := &Server{
		store:  st,
		inbox:  ib,
		queue:  q,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Fixed paths first so /content/{id} cannot swallow them.
	s.router.HandleFunc("/content/search", s.handleSearchContent).Methods("GET")
	s.router.HandleFunc("/content/search", s.handleQueryContent).Methods("POST")
	s.router.HandleFunc("/content/stats", s.handleStats).Methods("GET")

	s.router.HandleFunc("/content/{id}/enrich", s.handleEnrichContent).Methods("POST")
	s.router.HandleFunc("/content/{id}", s.handleGetContent).Methods("GET")
	s.router.HandleFunc("/content/{id}", s.handleUpdateContent).Methods("PUT")
	s.router.HandleFunc("/content/{id}", s.handleDeleteContent).Methods("DELETE")

	s.router.HandleFunc("/contact", s.handleContactSubmit).Methods("POST")
	s.router.HandleFunc("/contact", s.handleContactList).Methods("GET")

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
}

// Start launches the HTTP server
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("API server listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, envelope{"status": "ok", "items": s.store.Len()})
}

// Package web serves the dashboard page and the WebSocket channel viewers
// use to request snapshots.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"gpufleet/internal/errors"
	"gpufleet/internal/logger"
	"gpufleet/internal/store"
)

//go:embed templates/*
var templateFiles embed.FS

// Server exposes the bootstrap page on "/" and the viewer channel on "/ws".
type Server struct {
	store *store.Store
	log   logger.Logger
	page  *template.Template

	mu  sync.Mutex
	srv *http.Server
}

// NewServer creates a dashboard server reading snapshots from st.
func NewServer(st *store.Store, log logger.Logger) *Server {
	if log == nil {
		log = logger.Noop()
	}
	return &Server{
		store: st,
		log:   log,
		page:  template.Must(template.ParseFS(templateFiles, "templates/index.html.tmpl")),
	}
}

// Handler returns the route mux for the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleViewer)
	return mux
}

// ListenAndServe blocks serving the dashboard on addr.
// No WriteTimeout is set: it would sever long-lived WebSocket connections.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	s.log.Info("dashboard listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.WrapWithCode(err, errors.ErrServe,
			"Dashboard server stopped",
			"Check the port is free or pick another with --port")
	}
	return nil
}

// Shutdown stops the listener started by ListenAndServe. Safe to call
// before ListenAndServe or more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// handleIndex renders the bootstrap page, which connects back to /ws and
// drives the refresh cadence from the browser.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Host string
	}{
		Host: r.Host,
	}
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("index render failed: %v", err)
	}
}

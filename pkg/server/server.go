package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gomorph/gomorph/pkg/memdom"
	"github.com/gomorph/gomorph/pkg/reconcile"
	"github.com/gomorph/gomorph/pkg/render"
)

// frame is the JSON wire format of the session websocket.
//
// Client to server: {"type":"event","name":"click","target":"counter"}
// Server to client: {"type":"sync","html":"...","ops":3}
type frame struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Target string `json:"target,omitempty"`
	HTML   string `json:"html,omitempty"`
	Ops    int    `json:"ops,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server hosts live-view sessions over HTTP and websocket.
type Server struct {
	config   *Config
	logger   *slog.Logger
	root     RootFunc
	upgrader websocket.Upgrader

	httpServer *http.Server

	mu       sync.Mutex
	sessions map[string]*Session
	nextID   atomic.Uint64
}

// New creates a Server serving the given root.
func New(root RootFunc, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.fillDefaults()
	}
	s := &Server{
		config:   config,
		logger:   config.Logger,
		root:     root,
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.httpServer = &http.Server{
		Addr:    config.Address,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Post("/snapshots/{name}", s.handleSnapshotSave)
	r.Get("/snapshots/{name}", s.handleSnapshotLoad)
	r.Get("/snapshots", s.handleSnapshotList)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// Start begins serving and blocks until Shutdown or listen failure.
func (s *Server) Start() error {
	s.logger.Info("gomorph server listening", "addr", s.config.Address)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// newSession builds a session with its own document and reconciler.
func (s *Server) newSession() *Session {
	id := fmt.Sprintf("s%d", s.nextID.Add(1))
	doc := memdom.NewDocument()
	opts := []reconcile.Option{
		reconcile.WithLogger(s.logger.With("session", id)),
		reconcile.WithObserver(reconcile.PrometheusObserver()),
	}
	if s.config.Components != nil {
		opts = append(opts, reconcile.WithComponents(s.config.Components))
	}
	return &Session{
		ID:     id,
		values: make(map[string]any),
		doc:    doc,
		rec:    reconcile.New(doc, opts...),
	}
}

func (s *Server) addSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.ID)
}

// handleIndex serves a statically rendered page for clients without a
// websocket (and as the initial document for those with one).
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.newSession()
	html, err := render.ToString(s.root(sess))
	if err != nil {
		s.logger.Error("render failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>gomorph</title></head><body>%s</body></html>\n", html)
}

// handleWebSocket runs one session until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	sess := s.newSession()
	s.addSession(sess)
	defer s.removeSession(sess)
	s.logger.Info("session opened", "session", sess.ID, "remote", r.RemoteAddr)

	if err := sess.mount(s.root); err != nil {
		s.logger.Error("mount failed", "session", sess.ID, "err", err)
		s.writeFrame(conn, frame{Type: "error", Error: err.Error()})
		return
	}
	if err := s.writeFrame(conn, frame{Type: "sync", HTML: sess.HTML(), Ops: sess.rec.LastOps().Total()}); err != nil {
		return
	}

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("session read error", "session", sess.ID, "err", err)
			}
			s.logger.Info("session closed", "session", sess.ID)
			return
		}
		if f.Type != "event" {
			s.writeFrame(conn, frame{Type: "error", Error: "unknown frame type: " + f.Type})
			continue
		}
		ops, err := sess.dispatch(s.root, f.Name, f.Target)
		if err != nil {
			s.logger.Warn("dispatch failed", "session", sess.ID, "err", err)
			s.writeFrame(conn, frame{Type: "error", Error: err.Error()})
			continue
		}
		if err := s.writeFrame(conn, frame{Type: "sync", HTML: sess.HTML(), Ops: ops.Total()}); err != nil {
			return
		}
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, f frame) error {
	conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := conn.WriteJSON(f); err != nil {
		s.logger.Warn("session write error", "err", err)
		return err
	}
	return nil
}

// handleSnapshotSave renders a fresh tree and stores it under the name.
func (s *Server) handleSnapshotSave(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sess := s.newSession()
	html, err := render.ToString(s.root(sess))
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if err := s.config.Snapshots.Save(r.Context(), name, html); err != nil {
		s.logger.Error("snapshot save failed", "name", name, "err", err)
		http.Error(w, "snapshot save failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	fmt.Fprintf(w, "saved %s\n", name)
}

// handleSnapshotList lists stored snapshot names, one per line.
func (s *Server) handleSnapshotList(w http.ResponseWriter, r *http.Request) {
	names, err := s.config.Snapshots.List(r.Context())
	if err != nil {
		s.logger.Error("snapshot list failed", "err", err)
		http.Error(w, "snapshot list failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// handleSnapshotLoad serves a stored snapshot.
func (s *Server) handleSnapshotLoad(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	snap, err := s.config.Snapshots.Load(r.Context(), name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(snap.HTML))
}

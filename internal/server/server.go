// Package server exposes a planned route to a phone over WebSocket and as a
// GeoJSON overlay.
//
// Socket protocol (text frames, one command per frame):
//
//	id:<name>          bind the connection to a shopper session
//	cmd:plan [list]    plan the stored list (default list when omitted)
//	cmd:next           advance one instruction
//	cmd:skip           skip the item ahead
//	cmd:status         report the current instruction
//	cmd:seek <x>,<y>   jump to the unvisited instruction nearest (x, y)
//	scan:<base64>      confirm the current item from a shelf photo
//	echo:<text>        echo test
//
// Every reply is {"type": ..., "payload": ...}.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/storenav/confirm"
	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/navigator"
	"github.com/katalvlaran/storenav/shoplist"
)

// ErrNoPlanner indicates Options without a planner.
var ErrNoPlanner = errors.New("server: planner is required")

// Options wires the server's collaborators. Store and Confirmer are optional.
type Options struct {
	Planner   *navigator.Planner
	Store     *store.Store
	Confirmer confirm.Confirmer
	Logger    *slog.Logger
}

// Server holds one navigation session per shopper id.
type Server struct {
	planner   *navigator.Planner
	store     *store.Store
	confirmer confirm.Confirmer
	log       *slog.Logger
	upgrader  websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*navigator.Session
}

// New builds a server.
func New(opts Options) (*Server, error) {
	if opts.Planner == nil {
		return nil, ErrNoPlanner
	}
	if opts.Confirmer == nil {
		opts.Confirmer = confirm.Unavailable
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Server{
		planner:   opts.Planner,
		store:     opts.Store,
		confirmer: opts.Confirmer,
		log:       opts.Logger,
		upgrader:  websocket.Upgrader{ReadBufferSize: 1 << 10, WriteBufferSize: 1 << 10},
		sessions:  make(map[string]*navigator.Session),
	}, nil
}

// Handler routes "/" (test page), "/w" (socket) and "/route.geojson".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.home)
	mux.HandleFunc("/w", s.handleWebsocket)
	mux.HandleFunc("/route.geojson", s.handleGeoJSON)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	s.log.Info("narration server listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// session returns the session for id, or nil.
func (s *Server) session(id string) *navigator.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *Server) setSession(id string, sess *navigator.Session) {
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
}

// plan loads list from the store and plans it.
func (s *Server) plan(ctx context.Context, list string) (*navigator.Result, error) {
	var items shoplist.List
	if s.store != nil {
		var err error
		items, err = s.store.Items(ctx, list)
		if err != nil {
			return nil, err
		}
	}
	res, err := s.planner.Plan(items)
	if err != nil {
		s.log.Warn("plan failed", "list", list, "err", err)
		return res, fmt.Errorf("plan %q: %w", list, err)
	}
	s.log.Info("planned", "list", list, "items", len(res.Items), "unreachable", len(res.Unreachable), "steps", res.Steps())
	return res, nil
}

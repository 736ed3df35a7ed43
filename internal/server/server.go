// Package server streams board generations to websocket clients. Every
// client gets its own simulation: one controller, ticked on a fixed-step
// clock in a single goroutine, with the render-sync phase serializing the
// pre-commit snapshot into the outgoing frame.
package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/pkg/core"
)

// pollInterval bounds how long a session sleeps between fixed-step polls.
const pollInterval = time.Millisecond

// Options configures the server and the default board handed to clients.
type Options struct {
	Board    life.Config
	Pattern  string
	Seed     int64
	TPS      int
	MaxTicks int
}

// Server upgrades HTTP requests to websocket sessions.
type Server struct {
	opts     Options
	upgrader websocket.Upgrader
}

// New constructs a Server with the provided defaults.
func New(opts Options) *Server {
	if opts.TPS <= 0 {
		opts.TPS = 10
	}
	if opts.Pattern == "" {
		opts.Pattern = "random"
	}
	return &Server{opts: opts}
}

// Handler returns the HTTP handler serving the stream endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	cfg, factory, seed, err := s.sessionParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := s.runSession(conn, cfg, factory, seed); err != nil {
		log.Printf("server: session ended: %v", err)
	}
}

// sessionParams resolves the board for one client, applying query-string
// overrides on top of the server defaults.
func (s *Server) sessionParams(r *http.Request) (life.Config, pattern.Factory, int64, error) {
	q := r.URL.Query()
	base := s.opts.Board
	params := map[string]string{
		"rows":      strconv.Itoa(base.Rows),
		"cols":      strconv.Itoa(base.Cols),
		"cell_size": strconv.FormatFloat(base.CellSize, 'g', -1, 64),
		"wrap":      strconv.FormatBool(base.Wrap),
	}
	for key := range params {
		if v := q.Get(key); v != "" {
			params[key] = v
		}
	}
	cfg := life.FromMap(params)
	if err := cfg.Validate(); err != nil {
		return life.Config{}, nil, 0, err
	}

	name := s.opts.Pattern
	if v := q.Get("pattern"); v != "" {
		name = v
	}
	factory, ok := pattern.Lookup(name)
	if !ok {
		return life.Config{}, nil, 0, errors.Errorf("unknown pattern %q", name)
	}

	seed := s.opts.Seed
	if v := q.Get("seed"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}
	return cfg, factory, seed, nil
}

// runSession drives a single client's simulation until the client goes
// away or the tick budget is exhausted. Shutdown only happens between
// ticks, never inside one.
func (s *Server) runSession(conn *websocket.Conn, cfg life.Config, factory pattern.Factory, seed int64) error {
	world, err := life.Initialize(cfg, factory(cfg, seed))
	if err != nil {
		return errors.Wrap(err, "initialize board")
	}
	sink := &frameSink{conn: conn}
	ctrl := life.NewController(world, sink)
	if err := ctrl.Start(); err != nil {
		return err
	}

	// Detect client disconnect; no inbound messages are expected.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	clock := core.NewFixedStep(s.opts.TPS)
	for {
		select {
		case <-closed:
			return nil
		default:
		}
		if s.opts.MaxTicks > 0 && ctrl.Generation() >= s.opts.MaxTicks {
			return nil
		}
		if !clock.ShouldStep() {
			time.Sleep(pollInterval)
			continue
		}
		if err := ctrl.Tick(); err != nil {
			return err
		}
		if sink.err != nil {
			return errors.Wrap(sink.err, "write frame")
		}
	}
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/quintgame/quint-server-go/internal/config"
	"github.com/quintgame/quint-server-go/internal/game"
	"github.com/quintgame/quint-server-go/internal/game/dice"
	"github.com/quintgame/quint-server-go/internal/repository"
)

// Server is the WebSocket gateway between UI clients and the rule
// engine. It hosts one match at a time and serializes all engine
// access behind a coarse lock — the engine itself is single-threaded
// by design.
type Server struct {
	cfg     config.ServerConfig
	gameCfg config.GameConfig
	logger  *zap.Logger
	matches *repository.MatchRepository

	upgrader websocket.Upgrader

	mu      sync.Mutex
	match   *game.MatchManager
	clients map[*client]bool
}

// New creates a gateway server.
func New(cfg config.ServerConfig, gameCfg config.GameConfig, matches *repository.MatchRepository, logger *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		gameCfg: gameCfg,
		logger:  logger,
		matches: matches,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// Run serves the gateway until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{Addr: s.cfg.Address, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gateway listening", zap.String("address", s.cfg.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleWS upgrades the connection and runs the client's read loop.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := newClient(conn, s)
	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()

	go c.writePump()
	c.readPump()
}

// removeClient unregisters a disconnected client.
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	if s.clients[c] {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
}

// dispatch runs one command against the engine and answers the issuing
// client. Mutating commands broadcast a fresh state frame afterwards.
func (s *Server) dispatch(c *client, cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(cmd); err != nil {
		s.logger.Warn("command failed",
			zap.String("type", cmd.Type),
			zap.Error(err),
		)
		if c != nil {
			c.enqueue(Frame{Type: FrameError, Error: err.Error()})
		}
		return
	}
	s.broadcastState()
	s.maybePersistResult()
}

// apply executes a single command. Callers hold s.mu.
func (s *Server) apply(cmd Command) error {
	switch cmd.Type {
	case CmdNewMatch:
		return s.newMatch(cmd.Players)
	case CmdPlayCard:
		if s.match == nil {
			return fmt.Errorf("no match in progress")
		}
		return s.match.PlayCard(cmd.Player, cmd.CardID, cmd.TargetCards, cmd.TargetPlayers)
	case CmdEndTurn:
		if s.match == nil {
			return fmt.Errorf("no match in progress")
		}
		return s.match.EndTurn(cmd.Player)
	case CmdResetMatch:
		if s.match == nil {
			return fmt.Errorf("no match in progress")
		}
		return s.match.ResetMatch()
	case CmdGetState:
		if s.match == nil {
			return fmt.Errorf("no match in progress")
		}
		return nil
	default:
		return fmt.Errorf("unknown command type %q", cmd.Type)
	}
}

// newMatch builds a fresh engine and subscribes the log fan-out.
func (s *Server) newMatch(players []string) error {
	opts := game.Options{
		TotalRounds:     s.gameCfg.TotalRounds,
		WinsRequired:    s.gameCfg.WinsRequired,
		OpeningHandSize: s.gameCfg.OpeningHandSize,
		RoundDealSize:   s.gameCfg.RoundDealSize,
	}
	mgr := game.NewMatchManager(opts, dice.NewFromTime(), s.logger)
	mgr.SetNotificationHandler(func(msg game.Message) {
		s.broadcast(Frame{Type: FrameLog, Log: msg.Text})
	})
	if err := mgr.StartMatch(players); err != nil {
		return err
	}
	s.match = mgr
	return nil
}

// broadcastState pushes the current snapshot to every client. Callers
// hold s.mu.
func (s *Server) broadcastState() {
	if s.match == nil {
		return
	}
	state := s.match.Snapshot()
	s.broadcast(Frame{Type: FrameState, State: &state})
}

// broadcast sends a frame to all connected clients without blocking on
// slow ones.
func (s *Server) broadcast(frame Frame) {
	for c := range s.clients {
		c.enqueue(frame)
	}
}

// maybePersistResult records the outcome once the match is over.
// Callers hold s.mu.
func (s *Server) maybePersistResult() {
	if s.match == nil || s.matches == nil || s.match.State() != game.StateMatchOver {
		return
	}
	names := make([]string, 0, len(s.match.Players()))
	for _, p := range s.match.Players() {
		names = append(names, p.Name)
	}
	rec := repository.MatchRecord{
		ID:         s.match.ID(),
		Players:    names,
		Winners:    s.match.MatchWinners(),
		Rounds:     s.match.Round(),
		FinishedAt: time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.matches.SaveMatch(ctx, rec); err != nil {
			s.logger.Error("failed to persist match result", zap.Error(err))
		}
	}()
}

// Snapshot returns the current match view, or nil when no match is
// running.
func (s *Server) Snapshot() *game.MatchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.match == nil {
		return nil
	}
	view := s.match.Snapshot()
	return &view
}

func encodeFrame(frame Frame) []byte {
	data, err := json.Marshal(frame)
	if err != nil {
		return []byte(`{"type":"error","error":"encode failure"}`)
	}
	return data
}

// internal/spectate/server.go
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/logger"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	readLimit    = 512
	shutdownWait = 5 * time.Second
)

// SnapshotSource: откуда брать снимки (app.Game).
type SnapshotSource interface {
	Snapshot() *app.Snapshot
}

// Server раздаёт снимки симуляции наблюдателям по websocket.
// Наблюдатели только читают: входящие сообщения отбрасываются.
type Server struct {
	addr     string
	source   SnapshotSource
	interval time.Duration
	log      logger.Log
	upgrader websocket.Upgrader

	clients   atomic.Int64
	closing   chan struct{}
	closeOnce sync.Once
}

func NewServer(addr string, source SnapshotSource, interval time.Duration, log logger.Log) *Server {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Server{
		addr:     addr,
		source:   source,
		interval: interval,
		log:      log.With(logger.String("component", "spectate")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		closing: make(chan struct{}),
	}
}

// Clients: число подключённых наблюдателей.
func (s *Server) Clients() int64 { return s.clients.Load() }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Run слушает addr до отмены контекста, затем закрывает наблюдателей и сервер.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("spectate: listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("spectator server listening", logger.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: serve: %w", err)
	case <-ctx.Done():
	}

	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	s.log.Info("spectator server stopped")
	return nil
}

// Close отключает всех наблюдателей. Захваченные websocket-соединения
// http.Server.Shutdown не закрывает.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.closing) })
}

type health struct {
	Status  string `json:"status"`
	Tick    uint64 `json:"tick"`
	Phase   string `json:"phase"`
	Clients int64  `json:"clients"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := health{Status: "ok", Clients: s.Clients()}
	if snap := s.source.Snapshot(); snap != nil {
		h.Tick = snap.Tick
		h.Phase = snap.Phase
	}
	writeJSON(w, h)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.source.Snapshot()
	if snap == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", logger.Err(err))
		return
	}
	defer conn.Close()

	n := s.clients.Add(1)
	defer s.clients.Add(-1)
	log := s.log.With(logger.String("remote", r.RemoteAddr))
	log.Info("spectator connected", logger.Any("clients", n))

	gone := make(chan struct{})
	go s.readPump(conn, gone)

	if err := s.writePump(conn, gone); err != nil {
		log.Info("spectator disconnected", logger.Err(err))
		return
	}
	log.Info("spectator disconnected")
}

// readPump держит дедлайн чтения и ловит закрытие со стороны клиента.
func (s *Server) readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump шлёт снимок каждый интервал, если тик сменился.
func (s *Server) writePump(conn *websocket.Conn, gone <-chan struct{}) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	var lastTick uint64
	sent := false
	for {
		select {
		case <-gone:
			return nil
		case <-s.closing:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteMessage(websocket.CloseMessage, msg)
			return nil
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-ticker.C:
			snap := s.source.Snapshot()
			if snap == nil || (sent && snap.Tick == lastTick) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				return err
			}
			lastTick, sent = snap.Tick, true
		}
	}
}

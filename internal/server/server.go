package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

var ErrNotListening = errors.New("server is not listening")

// Handler answers one request. It writes exactly one response to w.
type Handler func(w *response.Writer, r *request.Request)

// Server accepts connections and runs one worker goroutine per connection.
// There is no limit on the number of workers.
type Server struct {
	cfg        Config
	handler    Handler
	middleware []Middleware
	listener   net.Listener
	buffers    *BufferPool
	closed     atomic.Bool

	Logger  zerolog.Logger
	Console *Printer
	Metrics *Metrics
}

// New creates a server. Logger, Console and Metrics may be replaced
// before Listen.
func New(cfg Config, handler Handler) *Server {
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = DefaultReadBufferSize
	}

	return &Server{
		cfg:     cfg,
		handler: handler,
		buffers: NewBufferPool(cfg.ReadBufferSize),
		Logger:  NewLogger(os.Stderr, zerolog.InfoLevel),
		Console: NewPrinter(os.Stdout),
		Metrics: NewMetrics(),
	}
}

// Use adds middleware. The first one added runs outermost.
func (s *Server) Use(mw ...Middleware) {
	s.middleware = append(s.middleware, mw...)
}

// UseDefaults installs metrics, request logging and panic recovery.
// Recovery runs innermost so a recovered request is still counted and
// logged with its not-found outcome.
func (s *Server) UseDefaults() {
	s.Use(
		MetricsMiddleware(s.Metrics),
		LoggingMiddleware(s.Logger),
		RecoveryMiddleware(s.Logger, s.Metrics),
	)
}

// Listen binds the listening socket with address reuse enabled
func (s *Server) Listen() error {
	lc := net.ListenConfig{Control: reuseAddr}

	listener, err := lc.Listen(context.Background(), "tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Address(), err)
	}

	s.listener = listener
	return nil
}

// Serve runs the accept loop until Close. A failed accept is logged and
// the loop carries on.
func (s *Server) Serve() error {
	if s.listener == nil {
		return ErrNotListening
	}

	handler := s.chain()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			s.Metrics.AcceptErrors.Add(1)
			s.Logger.Error().Err(err).Msg("accept failed")
			continue
		}

		s.Metrics.ConnectionsTotal.Add(1)
		go s.serveConn(conn, handler)
	}
}

// Close stops the accept loop. Workers already running are left alone.
func (s *Server) Close() error {
	s.closed.Store(true)
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Stats() MetricsSnapshot {
	return s.Metrics.Snapshot()
}

func (s *Server) chain() Handler {
	h := s.handler
	for i := len(s.middleware) - 1; i >= 0; i-- {
		h = s.middleware[i](h)
	}
	return h
}

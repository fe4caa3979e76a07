package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"greeter/internal/greeting"
	"greeter/pkg/logger"
)

// Server encapsulates the HTTP handlers and routing logic
type Server struct {
	fmtr *greeting.Formatter
}

// NewServer initialises the HTTP greeting service.
func NewServer(fmtr *greeting.Formatter) *Server {
	return &Server{fmtr: fmtr}
}

// routes builds a fresh route table. Every call returns a new mux so each
// server instance gets an isolated router rather than a shared global.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health_check", s.handleHealthCheck)
	mux.HandleFunc("GET /{name}", s.handleGreet)
	return mux
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGreet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	logger.Debug("greeting request", "name", name)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s.fmtr.Format(name)))
}

// Start runs the standard library net/http server on addr and blocks until it
// stops.
func (s *Server) Start(addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}

	logger.Printf("[Server] Starting greeting service on %s", addr)
	return server.ListenAndServe()
}

// Handle refers to a running ephemeral server instance. Closing it shuts the
// listener and terminates the serve goroutine.
type Handle struct {
	ln net.Listener
}

// Port returns the OS-assigned port the instance is serving on.
func (h *Handle) Port() int {
	return h.ln.Addr().(*net.TCPAddr).Port
}

// Addr returns the full host:port address of the instance.
func (h *Handle) Addr() string {
	return h.ln.Addr().String()
}

// Close shuts the listener, unblocking the serve goroutine.
func (h *Handle) Close() error {
	return h.ln.Close()
}

// Listen binds a loopback listener on an OS-assigned port and starts serving
// in the background. The port is resolved before Listen returns; the serve
// goroutine owns the listener after handoff and runs until the handle is
// closed. A non-error return means the socket is ready to accept, not that the
// accept loop has necessarily started (the listen backlog absorbs that gap).
func (s *Server) Listen() (*Handle, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to bind ephemeral listener: %w", err)
	}

	mux := s.routes()
	go func() {
		if err := http.Serve(ln, mux); err != nil && !errors.Is(err, net.ErrClosed) {
			logger.Fatalf("Ephemeral server stopped: %v", err)
		}
	}()

	logger.Debug("ephemeral server listening", "addr", ln.Addr().String())
	return &Handle{ln: ln}, nil
}

// StartEphemeral is Listen without the teardown handle: the caller gets the
// OS-assigned port and the serve goroutine runs for the life of the process.
// On bind failure the returned port is 0 and nothing is launched.
func (s *Server) StartEphemeral() (int, error) {
	h, err := s.Listen()
	if err != nil {
		return 0, err
	}
	return h.Port(), nil
}

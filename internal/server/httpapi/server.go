// Package httpapi exposes the forum over HTTP: static frontend pages,
// the NUL-separated login endpoint, and the JSON post endpoints. Errors
// from the service layer are converted to status codes here and nowhere
// else.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/azarovs/forumd/internal/logging"
	"github.com/azarovs/forumd/internal/server/posts"
	"github.com/azarovs/forumd/internal/server/users"
)

type HTTPServer struct {
	address     string
	frontendDir string
	auth        *users.Service
	forum       *posts.Service
	logger      logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, auth *users.Service, forum *posts.Service, frontendDir string) *HTTPServer {
	return &HTTPServer{
		address:     a,
		logger:      l.With("module", "http_server"),
		auth:        auth,
		forum:       forum,
		frontendDir: frontendDir,
	}
}

// Handler builds the route table. Split out from Run so tests can drive
// the full surface through httptest without binding a socket.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleFrontPage)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("GET /_forum/index", s.handleIndex)
	mux.HandleFunc("POST /_forum/auth", s.handleAuth)
	mux.HandleFunc("POST /_forum/post", s.handlePost)

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Package server initializes and runs the forum application: it loads the
// user records, builds the session registry and post store, and starts the
// HTTP server with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/azarovs/forumd/internal/logging"
	"github.com/azarovs/forumd/internal/server/config"
	"github.com/azarovs/forumd/internal/server/httpapi"
	"github.com/azarovs/forumd/internal/server/posts"
	"github.com/azarovs/forumd/internal/server/sessions"
	"github.com/azarovs/forumd/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	auth   *users.Service
	forum  *posts.Service
}

// NewApp wires the application from configuration. Loading the user
// records is the one startup step that can fail: the server cannot serve
// anyone without them.
func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	userRepo, err := users.NewJSONRepository(c.UsersFile)
	if err != nil {
		return nil, fmt.Errorf("loading user records: %w", err)
	}

	registry := sessions.NewRegistry()
	postRepo := posts.NewJSONRepository(c.PostsFile)

	auth := users.NewService(userRepo, registry)
	forum := posts.NewService(postRepo, registry)

	return &App{config: c, logger: logger, auth: auth, forum: forum}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.auth, app.forum, app.config.FrontendDir)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}

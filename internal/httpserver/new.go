package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	agentHTTP "itodo/internal/agent/delivery/http"
	"itodo/internal/middleware"
	todoHTTP "itodo/internal/todo/delivery/http"
	"itodo/internal/todo/delivery/web"
	"itodo/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// SessionCounter reports how many browser sessions hold a list.
type SessionCounter interface {
	Len() int
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Todo domain
	todoHandler todoHTTP.Handler
	webHandler  web.Handler
	sessions    SessionCounter

	// Assistant domain
	assistantHandler agentHTTP.Handler
	chatEnabled      bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	// Todo domain
	TodoHandler todoHTTP.Handler
	WebHandler  web.Handler
	Sessions    SessionCounter // optional, reported by /ready

	// Assistant domain
	AssistantHandler agentHTTP.Handler
	ChatEnabled      bool
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		todoHandler:      cfg.TodoHandler,
		webHandler:       cfg.WebHandler,
		sessions:         cfg.Sessions,
		assistantHandler: cfg.AssistantHandler,
		chatEnabled:      cfg.ChatEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoHandler == nil {
		return errors.New("todo handler is required")
	}
	if srv.webHandler == nil {
		return errors.New("web handler is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}

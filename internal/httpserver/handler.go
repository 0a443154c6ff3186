package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "itodo/internal/agent/delivery/http"
	"itodo/internal/model"
	todoHTTP "itodo/internal/todo/delivery/http"
	"itodo/internal/todo/delivery/web"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.SetHTMLTemplate(web.Templates())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Only domain routes get a
// session, so health checks never mint cookies.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// HTML page and form posts
	page := srv.gin.Group("", srv.mw.Session())
	web.RegisterRoutes(page, srv.webHandler, srv.mw.RateLimit())

	// JSON API
	api := srv.gin.Group("/api/v1", srv.mw.Session())
	todoHTTP.RegisterRoutes(api, srv.todoHandler)
	agentHTTP.RegisterRoutes(api, srv.assistantHandler, srv.mw.RateLimit())

	if srv.chatEnabled {
		srv.l.Infof(ctx, "Assistant chat enabled at POST /api/v1/assistant/chat")
	} else {
		srv.l.Infof(ctx, "No LLM provider configured, assistant chat answers 503")
	}

	return nil
}

// Handler exposes the mapped engine, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

// README: API gateway; registers HTTP routes and delegates to the routing service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"explore/internal/http/handlers"
	"explore/internal/http/middleware"
)

type ServerDeps struct {
	Routes handlers.DayRoutePlanner
	Logger *zap.Logger
}

type Server struct {
	routes *handlers.RouteHandler
	logger *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		routes: handlers.NewRouteHandler(deps.Routes),
		logger: logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.logger), middleware.Recovery(s.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/routes", s.routes.Compute)
	}
	return r
}

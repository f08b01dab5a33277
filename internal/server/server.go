package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/api"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/config"
)

// Server is the local review HTTP server.
type Server struct {
	router *gin.Engine
	api    *api.Handler
}

// NewServer wires the router and the API handler.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.Default(),
		api:    api.NewHandler(cfg),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS for the operator tooling.
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "bars-row-parser",
			"endpoints": []string{"/api/status", "/api/rows/parse", "/api/workbooks/parse"},
		})
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

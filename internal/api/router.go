// Package api wires the HTTP serving surface: health reporting plus the
// streamable MCP endpoint for clients that speak MCP over HTTP instead of
// stdio.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/api/handlers"
	apimiddleware "github.com/Tok/SuperColliderMCP/internal/api/middleware"
	"github.com/Tok/SuperColliderMCP/internal/config"
)

func SetupRouter(server *mcp.Server, cfg *config.Config, version string) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// Health check
	router.GET("/health", handlers.HealthCheck(cfg.SCAddr(), version))

	// MCP over streamable HTTP
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	router.Any("/mcp", gin.WrapH(mcpHandler))

	return router
}

package router

import (
	"net/http"

	"WebDev/internal/api/middleware"
	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/logger"
	"WebDev/internal/webdev"

	"github.com/gin-gonic/gin"
)

// Router encapsulates the HTTP router functionality
type Router struct {
	config     *config.Config
	engine     *gin.Engine
	components *webdev.Components
}

// New creates a new router instance with the given configuration and the
// components wired at startup
func New(cfg *config.Config, components *webdev.Components) *Router {
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if components == nil {
		components = &webdev.Components{}
	}

	return &Router{
		config:     cfg,
		engine:     gin.New(),
		components: components,
	}
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() *Router {
	r.engine.Use(gin.Recovery())
	r.engine.Use(LoggerMiddleware())

	// the CORS filter goes first so preflights never reach authentication
	if r.components.CorsFilter != nil {
		r.engine.Use(r.components.CorsFilter)
	}

	r.registerRootAPIEndpoint()
	r.registerAPIRoutes()

	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return r
}

// registerAPIRoutes registers the routes under /api. They require a bearer
// token when JWT is enabled.
func (r *Router) registerAPIRoutes() {
	api := r.engine.Group("/api")
	if r.components.AccessKeyUtil != nil {
		api.Use(middleware.JWTAuthMiddleware(r.components.AccessKeyUtil))
	}

	api.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString(middleware.SubjectKey),
		})
	})
}

// registerRootAPIEndpoint provides a simple API health check endpoint
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     r.config.AppName,
			"version": "1.0",
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// LoggerMiddleware creates a middleware for logging HTTP requests
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info("HTTP Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}

package router

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/logger"
	"WebDev/internal/webdev"
)

// Builder provides a fluent interface for constructing a router and owns the
// HTTP server lifecycle
type Builder struct {
	router *Router
	server *http.Server
}

// NewBuilder creates a new router builder. The HTTP server is created here so
// Shutdown works no matter when Start gets scheduled.
func NewBuilder(cfg *config.Config, components *webdev.Components) *Builder {
	router := New(cfg, components)
	srv := cfg.Server

	return &Builder{
		router: router,
		server: &http.Server{
			Addr:           net.JoinHostPort(srv.Host, strconv.Itoa(srv.Port)),
			Handler:        router,
			ReadTimeout:    seconds(srv.ReadTimeout),
			WriteTimeout:   seconds(srv.WriteTimeout),
			IdleTimeout:    seconds(srv.IdleTimeout),
			MaxHeaderBytes: srv.MaxHeaderBytes,
		},
	}
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	b.router.Initialize()
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// Start runs the HTTP server until Shutdown is called. It returns nil after a
// graceful shutdown, including one that happened before Start ran.
func (b *Builder) Start() error {
	logger.Info("Starting HTTP server", logger.String("address", b.server.Addr))
	if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server, waiting for in-flight requests until ctx ends
func (b *Builder) Shutdown(ctx context.Context) error {
	if err := b.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	logger.Info("Stopped HTTP server")
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

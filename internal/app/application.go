package app

import (
	"fmt"

	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/logger"
	"WebDev/internal/webdev"
)

// Application represents the main application
type Application struct {
	options    config.Options
	config     *config.Config
	service    *webdev.DefaultService
	components *webdev.Components
	isRunning  bool
}

// New creates a new application instance
func New(options config.Options) *Application {
	return &Application{
		options:   options,
		isRunning: false,
	}
}

// Initialize binds the configuration, initializes logging, resolves the
// web-dev settings and wires the enabled components
func (a *Application) Initialize() error {
	cfg, err := config.Load(a.options)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	resolved := webdev.Resolve(cfg.Vorbote.WebDev)
	a.service = webdev.NewService(resolved)

	components, err := webdev.Wire(resolved)
	if err != nil {
		return fmt.Errorf("failed to wire components: %w", err)
	}
	a.components = components

	logger.Info("Application initialized successfully",
		logger.Bool("jwt_enabled", resolved.JWT.Enabled),
		logger.Bool("cors_enabled", resolved.CORS.Enabled))
	a.isRunning = true
	return nil
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetConfigPath returns the path to the configuration file
func (a *Application) GetConfigPath() string {
	return a.options.ConfigPath
}

// Service returns the configuration facade
func (a *Application) Service() webdev.Service {
	return a.service
}

// Components returns the wired JWT helper and CORS filter
func (a *Application) Components() *webdev.Components {
	return a.components
}

// IsRunning reports whether Initialize succeeded and Shutdown was not called
func (a *Application) IsRunning() bool {
	return a.isRunning
}

// Shutdown performs cleanup and shutdown operations
func (a *Application) Shutdown() {
	logger.Info("Shutting down application...")

	// stdout cannot always be synced, so this is best effort
	_ = logger.Sync()

	a.isRunning = false
}

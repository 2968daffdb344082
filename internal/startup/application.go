package startup

import (
	"fmt"

	"WebDev/internal/app"
	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/logger"
	"WebDev/internal/utils/finder"
)

// InitializeApplication locates the configuration file and initializes the
// application from it and the other property sources in options
func InitializeApplication(options config.Options) (*app.Application, error) {
	foundConfigPath, err := finder.FindConfigFile(options.ConfigPath, true)
	if err != nil {
		return nil, fmt.Errorf("failed to find configuration: %w", err)
	}

	if foundConfigPath != "" {
		logger.Info("Using configuration file", logger.String("path", foundConfigPath))
	} else {
		logger.Info("No configuration file found, using defaults and environment")
	}
	options.ConfigPath = foundConfigPath

	application := app.New(options)
	if err := application.Initialize(); err != nil {
		return nil, err
	}

	return application, nil
}

// SetupDefaultLogger initializes a default logger for early startup
func SetupDefaultLogger() {
	if err := logger.Init(config.GetDefaultConfig()); err != nil {
		// Can't use logger yet, so use fmt
		panic("Error initializing logger: " + err.Error())
	}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName string        `yaml:"app_name" env:"APP_NAME"`
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	Logs    LogsConfig    `yaml:"logs" envPrefix:"LOGS_"`
	Vorbote VorboteConfig `yaml:"vorbote" envPrefix:"VORBOTE_"`
}

// ServerConfig holds server related configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port            int    `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
	Host            string `yaml:"host" env:"HOST"`
	ReadTimeout     int    `yaml:"read_timeout" env:"READ_TIMEOUT" validate:"min=0"`
	WriteTimeout    int    `yaml:"write_timeout" env:"WRITE_TIMEOUT" validate:"min=0"`
	IdleTimeout     int    `yaml:"idle_timeout" env:"IDLE_TIMEOUT" validate:"min=0"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"min=0"`
	MaxHeaderBytes  int    `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES" validate:"min=0"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Level    string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error dpanic panic fatal"`
	FilePath string `yaml:"file_path" env:"FILE_PATH"`
	Format   string `yaml:"format" env:"FORMAT" validate:"oneof=json console"`
	Stdout   bool   `yaml:"stdout" env:"STDOUT"`
}

// VorboteConfig is the root of the vorbote.* property namespace
type VorboteConfig struct {
	WebDev WebDevProperties `yaml:"web-dev" envPrefix:"WEB_DEV_"`
}

// LoadConfig loads the configuration from the specified file path.
// Keys missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfig returns the default configuration.
// Both JWT and CORS stay inert until enabled explicitly.
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "WebDev",
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
			Stdout:  true,
		},
	}
}

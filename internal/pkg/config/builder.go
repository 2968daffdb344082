package config

import (
	"errors"
	"fmt"
)

// Options selects the property sources used by Load
type Options struct {
	// ConfigPath is the YAML file to read; empty means defaults only
	ConfigPath string
	// EnvFiles are dotenv files exported before the environment is read
	EnvFiles []string
	// Properties are dotted key=value overrides applied last
	Properties map[string]string
}

// Load binds the configuration from all sources. Precedence, lowest first:
// defaults, config file, environment (including dotenv files), properties.
func Load(opts Options) (*Config, error) {
	return newConfigBuilder().
		withFile(opts.ConfigPath).
		withEnv(opts.EnvFiles).
		withProperties(opts.Properties).
		build()
}

// configBuilder layers each source directly onto one Config, so an explicit
// false or 0 from a later source replaces an earlier value
type configBuilder struct {
	config *Config
	props  map[string]string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		config: GetDefaultConfig(),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	if err := ApplyProperties(b.config, b.props); err != nil {
		return nil, err
	}

	b.config.normalize()
	if err := b.config.validate(); err != nil {
		return nil, err
	}
	return b.config, nil
}

func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" || b.err != nil {
		return b
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.config = cfg
	return b
}

func (b *configBuilder) withEnv(envFiles []string) *configBuilder {
	if b.err != nil {
		return b
	}

	if err := loadEnvFiles(envFiles); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if err := parseEnv(b.config); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withProperties(props map[string]string) *configBuilder {
	b.props = props
	return b
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalize trims list entries and upper-cases the algorithm name so that
// hs256 binds the same way HS256 does
func (c *Config) normalize() {
	jwt := &c.Vorbote.WebDev.JWT
	jwt.Algorithm = strings.ToUpper(strings.TrimSpace(jwt.Algorithm))

	cors := &c.Vorbote.WebDev.CORS
	cors.AllowOrigin = trimAll(cors.AllowOrigin)
	cors.AllowHeaders = trimAll(cors.AllowHeaders)
	cors.AllowMethods = trimAll(cors.AllowMethods)
	cors.ExposeHeaders = trimAll(cors.ExposeHeaders)

	c.Logs.Level = strings.ToLower(c.Logs.Level)
	c.Logs.Format = strings.ToLower(c.Logs.Format)
}

// validate checks the bound configuration. It does not check that a JWT secret
// is present; that surfaces when the token helper is first used.
func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func trimAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(item))
	}
	return out
}

// Package webdev turns the vorbote.web-dev.* properties into resolved,
// read-only configuration and wires the JWT helper and CORS filter from it.
package webdev

import (
	"slices"

	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/jwt"
	"WebDev/internal/pkg/logger"
)

// JwtConfigurationInfo is the resolved JWT configuration
type JwtConfigurationInfo struct {
	Enabled   bool          `yaml:"enabled"`
	Issuer    string        `yaml:"issuer"`
	Secret    string        `yaml:"secret"`
	Algorithm jwt.Algorithm `yaml:"algorithm"`
}

// CorsConfigurationInfo is the resolved CORS configuration
type CorsConfigurationInfo struct {
	Enabled          bool     `yaml:"enabled"`
	AllowCredentials bool     `yaml:"allow-credentials"`
	AllowOrigin      []string `yaml:"allow-origin"`
	AllowHeaders     []string `yaml:"allow-headers"`
	AllowMethods     []string `yaml:"allow-methods"`
	ExposeHeaders    []string `yaml:"expose-headers"`
}

// ResolvedConfig is the snapshot handed to the facade and to Wire
type ResolvedConfig struct {
	JWT  JwtConfigurationInfo  `yaml:"jwt"`
	CORS CorsConfigurationInfo `yaml:"cors"`
}

// Resolve applies the default-value policy to both property groups
func Resolve(props config.WebDevProperties) ResolvedConfig {
	return ResolvedConfig{
		JWT:  ResolveJWT(props.JWT),
		CORS: ResolveCORS(props.CORS),
	}
}

// ResolveJWT defaults the algorithm to HS256. Issuer and secret pass through
// as they are.
func ResolveJWT(p config.JwtProperties) JwtConfigurationInfo {
	algorithm := jwt.Algorithm(p.Algorithm)
	if algorithm == "" {
		algorithm = jwt.DefaultAlgorithm
	}

	return JwtConfigurationInfo{
		Enabled:   isSet(p.Enabled),
		Issuer:    p.Issuer,
		Secret:    p.Secret,
		Algorithm: algorithm,
	}
}

// ResolveCORS defaults allow-credentials to false. The default is only
// reported, as a warning, when CORS is enabled.
func ResolveCORS(p config.CorsProperties) CorsConfigurationInfo {
	enabled := isSet(p.Enabled)

	allowCredentials := false
	if p.AllowCredentials != nil {
		allowCredentials = *p.AllowCredentials
	} else if enabled {
		logger.Warn("Allow-credentials had been set to null, will set to false by default.")
	}

	return CorsConfigurationInfo{
		Enabled:          enabled,
		AllowCredentials: allowCredentials,
		AllowOrigin:      slices.Clone(p.AllowOrigin),
		AllowHeaders:     slices.Clone(p.AllowHeaders),
		AllowMethods:     slices.Clone(p.AllowMethods),
		ExposeHeaders:    slices.Clone(p.ExposeHeaders),
	}
}

// clone returns a deep copy so callers cannot reach shared slices
func (c CorsConfigurationInfo) clone() CorsConfigurationInfo {
	c.AllowOrigin = slices.Clone(c.AllowOrigin)
	c.AllowHeaders = slices.Clone(c.AllowHeaders)
	c.AllowMethods = slices.Clone(c.AllowMethods)
	c.ExposeHeaders = slices.Clone(c.ExposeHeaders)
	return c
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}

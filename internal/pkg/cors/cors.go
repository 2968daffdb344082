// Package cors builds the CORS filter from a flat policy on top of
// github.com/gin-contrib/cors.
package cors

import (
	"errors"
	"fmt"
	"strings"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// wildcardOrigin allows any origin
const wildcardOrigin = "*"

// ErrMultipleWildcards is returned for an origin with more than one "*"
var ErrMultipleWildcards = errors.New("only one * is allowed per origin")

// New creates a CORS filter. A "*" entry in allowOrigin allows every origin;
// entries such as https://*.example.com enable wildcard matching. Policies
// gin-contrib/cors cannot serve, for instance one without origins, are
// returned as an error.
func New(allowCredentials bool, allowOrigin, allowMethods, allowHeaders, exposeHeaders []string) (gin.HandlerFunc, error) {
	for _, origin := range allowOrigin {
		if strings.Count(origin, wildcardOrigin) > 1 {
			return nil, fmt.Errorf("invalid cors policy: %w: %s", ErrMultipleWildcards, origin)
		}
	}

	cfg := Config(allowCredentials, allowOrigin, allowMethods, allowHeaders, exposeHeaders)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors policy: %w", err)
	}
	return gincors.New(cfg), nil
}

// Config maps the policy onto a gin-contrib/cors configuration
func Config(allowCredentials bool, allowOrigin, allowMethods, allowHeaders, exposeHeaders []string) gincors.Config {
	cfg := gincors.Config{
		AllowCredentials: allowCredentials,
		AllowMethods:     clone(allowMethods),
		AllowHeaders:     clone(allowHeaders),
		ExposeHeaders:    clone(exposeHeaders),
	}

	for _, origin := range allowOrigin {
		switch {
		case origin == wildcardOrigin:
			cfg.AllowAllOrigins = true
		case strings.Contains(origin, wildcardOrigin):
			cfg.AllowWildcard = true
		}
	}

	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = clone(allowOrigin)
	}

	return cfg
}

func clone(items []string) []string {
	if items == nil {
		return nil
	}
	return append([]string(nil), items...)
}

package webdev

import (
	"fmt"
	"slices"

	"WebDev/internal/pkg/cors"
	"WebDev/internal/pkg/jwt"
	"WebDev/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Components holds whatever Wire constructed; a nil field means the feature
// is disabled
type Components struct {
	AccessKeyUtil *jwt.AccessKeyUtil
	CorsFilter    gin.HandlerFunc
}

// Wire constructs the JWT helper and the CORS filter, each only when its
// enabled flag is set
func Wire(resolved ResolvedConfig) (*Components, error) {
	components := &Components{}

	if resolved.JWT.Enabled {
		components.AccessKeyUtil = NewAccessKeyUtil(resolved.JWT)
	}

	if resolved.CORS.Enabled {
		filter, err := NewCorsFilter(resolved.CORS)
		if err != nil {
			return nil, err
		}
		components.CorsFilter = filter
	}

	return components, nil
}

// NewAccessKeyUtil builds the JWT helper from (algorithm, secret, issuer)
func NewAccessKeyUtil(info JwtConfigurationInfo) *jwt.AccessKeyUtil {
	logger.Debug("Injecting accessKeyUtil...",
		logger.String("algorithm", info.Algorithm.String()),
		logger.String("issuer", info.Issuer))
	return jwt.NewAccessKeyUtil(info.Algorithm, info.Secret, info.Issuer)
}

// NewCorsFilter builds the CORS filter from the resolved policy
func NewCorsFilter(info CorsConfigurationInfo) (gin.HandlerFunc, error) {
	logger.Debug("Injecting CORS Filter...",
		logger.Bool("allow_credentials", info.AllowCredentials),
		logger.Strings("allow_origin", info.AllowOrigin))

	if info.AllowCredentials && slices.Contains(info.AllowOrigin, "*") {
		logger.Warn("CORS allows credentials for every origin; browsers will refuse credentialed responses")
	}

	filter, err := cors.New(info.AllowCredentials, info.AllowOrigin, info.AllowMethods, info.AllowHeaders, info.ExposeHeaders)
	if err != nil {
		return nil, fmt.Errorf("failed to create CORS filter: %w", err)
	}
	return filter, nil
}

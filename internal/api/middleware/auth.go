package middleware

import (
	"net/http"
	"strings"

	"WebDev/internal/pkg/jwt"
	"WebDev/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	// SubjectKey is the gin context key holding the token subject
	SubjectKey = "subject"
	// ClaimsKey is the gin context key holding the parsed *jwt.Claims
	ClaimsKey = "claims"
)

// JWTAuthMiddleware rejects requests without a valid bearer token issued by util
func JWTAuthMiddleware(util *jwt.AccessKeyUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		// preflights carry no credentials; the CORS filter answers them
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		claims, err := util.Info(token)
		if err != nil {
			logger.Warn("Invalid JWT token",
				logger.Err(err),
				logger.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

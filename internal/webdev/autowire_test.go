package webdev

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"WebDev/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestWire_NothingEnabled(t *testing.T) {
	logs := observeLogs(t)

	components, err := Wire(ResolvedConfig{
		JWT:  JwtConfigurationInfo{Enabled: false, Secret: "abc", Issuer: "x", Algorithm: jwt.HS512},
		CORS: CorsConfigurationInfo{Enabled: false, AllowCredentials: true, AllowOrigin: []string{"*"}},
	})
	require.NoError(t, err)

	assert.Nil(t, components.AccessKeyUtil)
	assert.Nil(t, components.CorsFilter)
	assert.Zero(t, logs.Len())
}

func TestWire_DisabledCorsIgnoresBrokenPolicy(t *testing.T) {
	observeLogs(t)

	components, err := Wire(ResolvedConfig{CORS: CorsConfigurationInfo{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, components.CorsFilter)
}

func TestWire_JWTOnly(t *testing.T) {
	logs := observeLogs(t)

	components, err := Wire(ResolvedConfig{
		JWT: JwtConfigurationInfo{Enabled: true, Secret: "abc", Issuer: "x", Algorithm: jwt.HS256},
	})
	require.NoError(t, err)

	require.NotNil(t, components.AccessKeyUtil)
	assert.Nil(t, components.CorsFilter)
	assert.Equal(t, jwt.HS256, components.AccessKeyUtil.Algorithm())
	assert.Equal(t, "x", components.AccessKeyUtil.Issuer())

	debug := logs.FilterLevelExact(zapcore.DebugLevel).FilterMessage("Injecting accessKeyUtil...")
	assert.Equal(t, 1, debug.Len())
}

func TestWire_CorsOnly(t *testing.T) {
	logs := observeLogs(t)

	components, err := Wire(ResolvedConfig{
		CORS: CorsConfigurationInfo{
			Enabled:      true,
			AllowOrigin:  []string{"https://app.example"},
			AllowMethods: []string{"GET"},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, components.AccessKeyUtil)
	require.NotNil(t, components.CorsFilter)
	assert.Equal(t, 1, logs.FilterMessage("Injecting CORS Filter...").Len())

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(components.CorsFilter)
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWire_JWTHelperUsesResolvedValues(t *testing.T) {
	observeLogs(t)

	components, err := Wire(ResolvedConfig{
		JWT: JwtConfigurationInfo{Enabled: true, Secret: "abc", Issuer: "x", Algorithm: jwt.HS384},
	})
	require.NoError(t, err)

	token, err := components.AccessKeyUtil.CreateToken("alice", nil, time.Minute, nil)
	require.NoError(t, err)

	claims, err := jwt.NewAccessKeyUtil(jwt.HS384, "abc", "x").Info(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestWire_UnbuildableCorsPolicy(t *testing.T) {
	observeLogs(t)

	_, err := Wire(ResolvedConfig{CORS: CorsConfigurationInfo{Enabled: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create CORS filter")
}

func TestNewCorsFilter_WarnsOnCredentialedWildcard(t *testing.T) {
	logs := observeLogs(t)

	_, err := NewCorsFilter(CorsConfigurationInfo{Enabled: true, AllowCredentials: true, AllowOrigin: []string{"*"}})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

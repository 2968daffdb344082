package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	props, err := ParseProperties([]string{
		"vorbote.web-dev.jwt.secret=abc",
		"vorbote.web-dev.cors.allow-origin = https://a.example, https://b.example",
		"vorbote.web-dev.jwt.issuer=first",
		"vorbote.web-dev.jwt.issuer=second",
		"vorbote.web-dev.jwt.algorithm=",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", props["vorbote.web-dev.jwt.secret"])
	assert.Equal(t, "https://a.example, https://b.example", props["vorbote.web-dev.cors.allow-origin"])
	assert.Equal(t, "second", props["vorbote.web-dev.jwt.issuer"])
	assert.Equal(t, "", props["vorbote.web-dev.jwt.algorithm"])
}

func TestParseProperties_Malformed(t *testing.T) {
	for _, pair := range []string{"no-equals-sign", "=value", "  =x"} {
		t.Run(pair, func(t *testing.T) {
			_, err := ParseProperties([]string{pair})
			require.ErrorIs(t, err, ErrMalformedProperty)
		})
	}
}

func TestApplyProperties_AllWebDevKeys(t *testing.T) {
	cfg := GetDefaultConfig()

	err := ApplyProperties(cfg, map[string]string{
		"vorbote.web-dev.jwt.enabled":            "true",
		"vorbote.web-dev.jwt.issuer":             "x",
		"vorbote.web-dev.jwt.secret":             "abc",
		"vorbote.web-dev.jwt.algorithm":          "HS512",
		"vorbote.web-dev.cors.enabled":           "true",
		"vorbote.web-dev.cors.allow-credentials": "false",
		"vorbote.web-dev.cors.allow-origin":      "*",
		"vorbote.web-dev.cors.allow-headers":     "Authorization, Content-Type",
		"vorbote.web-dev.cors.allow-methods":     "GET,POST,,",
		"vorbote.web-dev.cors.expose-headers":    "X-Total-Count",
		"server.port":                            "9090",
	})
	require.NoError(t, err)

	jwt := cfg.Vorbote.WebDev.JWT
	require.NotNil(t, jwt.Enabled)
	assert.True(t, *jwt.Enabled)
	assert.Equal(t, "x", jwt.Issuer)
	assert.Equal(t, "abc", jwt.Secret)
	assert.Equal(t, "HS512", jwt.Algorithm)

	cors := cfg.Vorbote.WebDev.CORS
	require.NotNil(t, cors.Enabled)
	assert.True(t, *cors.Enabled)
	require.NotNil(t, cors.AllowCredentials)
	assert.False(t, *cors.AllowCredentials)
	assert.Equal(t, []string{"*"}, cors.AllowOrigin)
	assert.Equal(t, []string{"Authorization", "Content-Type"}, cors.AllowHeaders)
	assert.Equal(t, []string{"GET", "POST"}, cors.AllowMethods)
	assert.Equal(t, []string{"X-Total-Count"}, cors.ExposeHeaders)

	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestApplyProperties_RelaxedKeys(t *testing.T) {
	cfg := GetDefaultConfig()

	err := ApplyProperties(cfg, map[string]string{
		"vorbote.webdev.cors.allowCredentials": "true",
		"VORBOTE.WEB_DEV.JWT.SECRET":           "s",
	})
	require.NoError(t, err)

	require.NotNil(t, cfg.Vorbote.WebDev.CORS.AllowCredentials)
	assert.True(t, *cfg.Vorbote.WebDev.CORS.AllowCredentials)
	assert.Equal(t, "s", cfg.Vorbote.WebDev.JWT.Secret)
}

func TestApplyProperties_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		isErr error
	}{
		{"unknown key", "vorbote.web-dev.jwt.audience", "a", ErrUnknownProperty},
		{"bad bool", "vorbote.web-dev.jwt.enabled", "maybe", nil},
		{"bad port", "server.port", "eighty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyProperties(GetDefaultConfig(), map[string]string{tt.key: tt.value})
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

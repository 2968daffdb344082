package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProperties turns key=value pairs into a property map.
// Later pairs win over earlier ones with the same key.
func ParseProperties(pairs []string) (map[string]string, error) {
	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedProperty, pair)
		}
		props[key] = strings.TrimSpace(value)
	}
	return props, nil
}

// ApplyProperties assigns dotted property keys onto cfg field by field.
// Keys are matched loosely: case, dashes and underscores are ignored, so
// vorbote.web-dev.cors.allow-credentials and vorbote.webdev.cors.allowCredentials
// are the same key. List values are comma separated.
func ApplyProperties(cfg *Config, props map[string]string) error {
	for key, value := range props {
		if err := applyProperty(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

func applyProperty(cfg *Config, key, value string) error {
	jwt := &cfg.Vorbote.WebDev.JWT
	cors := &cfg.Vorbote.WebDev.CORS

	var err error
	switch canonicalKey(key) {
	case "vorbote.webdev.jwt.enabled":
		jwt.Enabled, err = parseBoolPtr(value)
	case "vorbote.webdev.jwt.issuer":
		jwt.Issuer = value
	case "vorbote.webdev.jwt.secret":
		jwt.Secret = value
	case "vorbote.webdev.jwt.algorithm":
		jwt.Algorithm = value
	case "vorbote.webdev.cors.enabled":
		cors.Enabled, err = parseBoolPtr(value)
	case "vorbote.webdev.cors.allowcredentials":
		cors.AllowCredentials, err = parseBoolPtr(value)
	case "vorbote.webdev.cors.alloworigin":
		cors.AllowOrigin = splitList(value)
	case "vorbote.webdev.cors.allowheaders":
		cors.AllowHeaders = splitList(value)
	case "vorbote.webdev.cors.allowmethods":
		cors.AllowMethods = splitList(value)
	case "vorbote.webdev.cors.exposeheaders":
		cors.ExposeHeaders = splitList(value)
	case "server.host":
		cfg.Server.Host = value
	case "server.port":
		cfg.Server.Port, err = strconv.Atoi(value)
	case "logs.level":
		cfg.Logs.Level = value
	case "logs.format":
		cfg.Logs.Format = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProperty, key)
	}

	if err != nil {
		return fmt.Errorf("invalid value %q for property %s: %w", value, key, err)
	}
	return nil
}

func canonicalKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("-", "", "_", "").Replace(key)
}

func parseBoolPtr(value string) (*bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

// WebDevProperties groups the vorbote.web-dev.* settings
type WebDevProperties struct {
	JWT  JwtProperties  `yaml:"jwt" envPrefix:"JWT_"`
	CORS CorsProperties `yaml:"cors" envPrefix:"CORS_"`
}

// JwtProperties holds the raw vorbote.web-dev.jwt.* settings as bound from the
// property sources. An empty Algorithm means it was not configured.
type JwtProperties struct {
	Enabled   *bool  `yaml:"enabled,omitempty" env:"ENABLED"`
	Issuer    string `yaml:"issuer,omitempty" env:"ISSUER"`
	Secret    string `yaml:"secret,omitempty" env:"SECRET"`
	Algorithm string `yaml:"algorithm,omitempty" env:"ALGORITHM" validate:"omitempty,oneof=HS256 HS384 HS512"`
}

// CorsProperties holds the raw vorbote.web-dev.cors.* settings.
// A nil AllowCredentials means it was not configured.
type CorsProperties struct {
	Enabled          *bool    `yaml:"enabled,omitempty" env:"ENABLED"`
	AllowCredentials *bool    `yaml:"allow-credentials,omitempty" env:"ALLOW_CREDENTIALS"`
	AllowOrigin      []string `yaml:"allow-origin,omitempty" env:"ALLOW_ORIGIN" validate:"dive,required"`
	AllowHeaders     []string `yaml:"allow-headers,omitempty" env:"ALLOW_HEADERS" validate:"dive,required"`
	AllowMethods     []string `yaml:"allow-methods,omitempty" env:"ALLOW_METHODS" validate:"dive,required"`
	ExposeHeaders    []string `yaml:"expose-headers,omitempty" env:"EXPOSE_HEADERS" validate:"dive,required"`
}

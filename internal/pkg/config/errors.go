package config

import "errors"

var (
	// ErrMalformedProperty is returned for a property override that is not key=value
	ErrMalformedProperty = errors.New("malformed property, expected key=value")
	// ErrUnknownProperty is returned for a property key that does not bind to any setting
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidConfig wraps validation failures of the bound configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)

package jwt

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Algorithm names an HMAC signing algorithm
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// DefaultAlgorithm is used when no algorithm is configured
const DefaultAlgorithm = HS256

// ParseAlgorithm parses a case-insensitive algorithm name
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	switch alg {
	case HS256, HS384, HS512:
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

func (a Algorithm) String() string {
	return string(a)
}

func (a Algorithm) signingMethod() *jwt.SigningMethodHMAC {
	switch a {
	case HS384:
		return jwt.SigningMethodHS384
	case HS512:
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

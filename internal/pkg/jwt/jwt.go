package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMissingSecret is returned when a helper without a secret is used
	ErrMissingSecret = errors.New("jwt secret is not configured")
	// ErrUnsupportedAlgorithm is returned for an unknown algorithm name
	ErrUnsupportedAlgorithm = errors.New("unsupported jwt algorithm")
)

// Claims represents the JWT claims structure
type Claims struct {
	Payload map[string]any `json:"payload,omitempty"`
	jwt.RegisteredClaims
}

// AccessKeyUtil signs and verifies tokens with one algorithm, secret and issuer
type AccessKeyUtil struct {
	algorithm Algorithm
	secret    []byte
	issuer    string
	now       func() time.Time
}

// NewAccessKeyUtil creates a token helper. The secret is not checked here;
// an empty one makes CreateToken and Info fail with ErrMissingSecret.
func NewAccessKeyUtil(algorithm Algorithm, secret, issuer string) *AccessKeyUtil {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	return &AccessKeyUtil{
		algorithm: algorithm,
		secret:    []byte(secret),
		issuer:    issuer,
		now:       time.Now,
	}
}

// Algorithm returns the signing algorithm
func (u *AccessKeyUtil) Algorithm() Algorithm {
	return u.algorithm
}

// Issuer returns the issuer written to and expected in tokens
func (u *AccessKeyUtil) Issuer() string {
	return u.issuer
}

// CreateToken creates a signed token for subject that expires after expireAfter
func (u *AccessKeyUtil) CreateToken(subject string, audience []string, expireAfter time.Duration, payload map[string]any) (string, error) {
	if len(u.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := u.now()
	claims := &Claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    u.issuer,
			Subject:   subject,
			Audience:  audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(expireAfter)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(u.algorithm.signingMethod(), claims)
	tokenString, err := token.SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Info validates a token and returns its claims. Tokens signed with another
// algorithm, secret or issuer are rejected.
func (u *AccessKeyUtil) Info(tokenString string) (*Claims, error) {
	if len(u.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{u.algorithm.String()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return u.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	if u.issuer != "" && !claims.VerifyIssuer(u.issuer, true) {
		return nil, jwt.ErrTokenInvalidIssuer
	}

	return claims, nil
}

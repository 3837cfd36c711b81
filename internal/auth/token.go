package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that fail parsing or verification
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSecret is returned when no signing secret is configured
	ErrMissingSecret = errors.New("signing secret is empty")
)

// Claims is the JWT payload: the standard claims plus the granted roles
type Claims struct {
	Roles []Role `json:"roles"`
	jwt.RegisteredClaims
}

// Token is a signed bearer token and its expiry
type Token struct {
	Token string
	Exp   time.Time
}

// NewToken signs an HS256 token for subject carrying roles, valid for ttl
func NewToken(secret, subject string, roles []Role, ttl time.Duration) (Token, error) {
	if secret == "" {
		return Token{}, ErrMissingSecret
	}

	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Token: signed, Exp: exp}, nil
}

// ParseToken verifies raw against secret and returns its principal.
// Tokens must be HS256 and carry an exp claim.
func ParseToken(secret, raw string) (*Principal, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{Subject: claims.Subject, Roles: claims.Roles}, nil
}

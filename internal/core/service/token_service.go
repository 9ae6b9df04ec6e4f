package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// tokenClaims is the JWT payload: subject carries the username, Role the
// role name assigned at issue time.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed bearer tokens. The signing
// secret is fixed at construction and shared safely by concurrent
// validations.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
}

// NewTokenService builds a TokenService. leeway is the accepted clock skew
// on expiry checks; pass zero for strict validation.
func NewTokenService(secret string, ttl, leeway time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, leeway: leeway}
}

// Issue signs a token for the given subject and role, expiring after the
// configured TTL.
func (s *TokenService) Issue(username, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the embedded principal.
// The signature is checked before any claim is trusted; the stored user
// record is never consulted.
func (s *TokenService) Validate(token string) (domain.Principal, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(s.leeway))
	if err != nil {
		return domain.Principal{}, mapTokenError(err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return domain.Principal{}, domain.ErrTokenMalformed
	}

	return domain.Principal{Username: claims.Subject, Role: claims.Role}, nil
}

// mapTokenError translates jwt parser errors into the domain taxonomy.
// Signature errors take precedence over expiry because the parser verifies
// the signature before validating claims.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrTokenMalformed
	}
}

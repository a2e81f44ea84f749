package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// insecureDevSecret keeps local setups working when JWT_SECRET is unset.
// Anyone can forge tokens with it; never deploy without a real secret.
const insecureDevSecret = "secret"

// TokenService issues and verifies HS256 JWTs carrying the canonical
// {identity, role} claim pair.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration, logger zerolog.Logger) *TokenService {
	if secret == "" {
		logger.Warn().Msg("JWT_SECRET is not set, falling back to an insecure development key")
		secret = insecureDevSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the principal's identity and role, expiring
// after the configured TTL.
func (s *TokenService) Issue(identity, role string) (string, error) {
	claims := jwt.MapClaims{
		"identity": identity,
		"role":     role,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Malformed structure, a bad signature
// and expiry all yield the same ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	identity, _ := claims["identity"].(string)
	role, _ := claims["role"].(string)
	if identity == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{Identity: identity, Role: role}, nil
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any credential that fails verification.
// Malformed, forged and expired tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the verified result of validating a credential. It is stored
// in the request context by the auth middleware.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// Service issues and verifies signed bearer credentials.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token Service. The secret must be non-empty; this is
// a configuration error and fatal at startup, never per-request.
func NewService(secret []byte, ttl time.Duration) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue signs the caller-supplied claim map, adding issued-at and expiry.
// The claims are opaque: no check that an email maps to a real account.
func (s *Service) Issue(claims map[string]any) (string, error) {
	now := s.now()

	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify validates a raw credential and recovers the identity claim embedded
// at issuance. Signature and expiry failures collapse into ErrInvalidToken.
func (s *Service) Verify(raw string) (*Identity, error) {
	parsed, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Identity{Email: email, Claims: claims}, nil
}

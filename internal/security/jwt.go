package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const RoleAdmin = "admin"

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims identify one admin session; ID (jti) is the session record key.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// SessionManager signs and verifies admin session tokens (HS256).
type SessionManager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewSessionManager(signingKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Issue returns a signed token for username with a fresh session id.
func (m *SessionManager) Issue(username string) (string, SessionClaims, error) {
	now := m.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", SessionClaims{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, claims, nil
}

// Parse verifies signature, expiry and role.
func (m *SessionManager) Parse(tokenStr string) (SessionClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.signingKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*SessionClaims)
	if !ok || !tok.Valid || claims.ID == "" || claims.Role != RoleAdmin {
		return SessionClaims{}, ErrInvalidToken
	}
	return *claims, nil
}

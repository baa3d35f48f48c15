// Package auth is the demo admin gate: one fixed credential pair and a server-side session flag.
// It is not a security boundary.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/security"
	"github.com/connectvan/backend/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Gate struct {
	logger       *zap.Logger
	username     string
	passwordHash []byte
	delay        time.Duration
	tokens       *security.SessionManager
	sessions     *store.SessionStore
}

func NewGate(logger *zap.Logger, cfg config.Security, tokens *security.SessionManager, sessions *store.SessionStore) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Gate{
		logger:       logger,
		username:     cfg.AdminUsername,
		passwordHash: hash,
		delay:        cfg.LoginDelay,
		tokens:       tokens,
		sessions:     sessions,
	}, nil
}

// Login resolves after the configured delay whatever the outcome. On failure nothing changes.
func (g *Gate) Login(ctx context.Context, username, password string) (Session, error) {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
	if !userOK || !passOK {
		g.logger.Info("admin login rejected")
		return Session{}, ErrInvalidCredentials
	}

	token, claims, err := g.tokens.Issue(g.username)
	if err != nil {
		return Session{}, err
	}
	if err := g.sessions.Create(ctx, claims.ID, g.username); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	g.logger.Info("admin logged in", zap.String("session_id", claims.ID))
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout clears the session unconditionally; unknown or malformed tokens are ignored.
func (g *Gate) Logout(ctx context.Context, token string) error {
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := g.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticated reports whether token belongs to a live session.
func (g *Gate) Authenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return false
	}
	if _, err := g.sessions.Get(ctx, claims.ID); err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			g.logger.Warn("session lookup failed", zap.Error(err))
		}
		return false
	}
	return true
}

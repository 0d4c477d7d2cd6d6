// Package session issues and verifies anonymous shopper session tokens.
// A session stands in for one browser's storage scope: the cart key and the
// checkout wizard both hang off its ID. There is no account or login behind
// it.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS256

// Manager mints and verifies guest session tokens.
type Manager struct {
	cfg config.SessionConfig
	now func() time.Time
}

func NewManager(cfg config.SessionConfig) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, fmt.Errorf("session issuer is required")
	}
	if cfg.TTL() <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{cfg: cfg, now: time.Now}, nil
}

// Issue mints a token for a brand new session and returns it with the
// session ID it carries.
func (m *Manager) Issue() (token, sessionID string, err error) {
	sessionID = uuid.NewString()

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    m.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL())),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, sessionID, nil
}

// Verify checks signature, issuer and expiry and returns the session ID.
func (m *Manager) Verify(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("session token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(m.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token missing subject")
	}
	return claims.Subject, nil
}

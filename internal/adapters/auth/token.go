package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// accountClaims are the claim names that may carry the wallet address
var accountClaims = []string{"address", "account", "wallet"}

// TokenInspector reads the claims of the API bearer token.
// The signature is checked by the API; the client only needs expiry and account.
type TokenInspector struct {
	now func() time.Time
}

// NewTokenInspector creates a new TokenInspector
func NewTokenInspector(now usecase.Clock) *TokenInspector {
	return &TokenInspector{now: now}
}

// Inspect decodes token. An empty token yields a session with Present unset.
func (i *TokenInspector) Inspect(token string) (*usecase.AuthSession, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return &usecase.AuthSession{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed auth token: %w", err)
	}

	session := &usecase.AuthSession{Present: true}

	if sub, err := claims.GetSubject(); err == nil {
		session.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
		session.Expired = !i.now().Before(exp.Time)
	}

	for _, name := range accountClaims {
		if v, ok := claims[name].(string); ok && common.IsHexAddress(v) {
			session.Account = common.HexToAddress(v)
			break
		}
	}
	if session.Account == (common.Address{}) && common.IsHexAddress(session.Subject) {
		session.Account = common.HexToAddress(session.Subject)
	}

	return session, nil
}

var _ usecase.AuthInspector = (*TokenInspector)(nil)

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quarkpapers/quark/internal/common"
)

// checkToken decodes the bearer token's claims without verifying the
// signature (the signing key lives on the server) and rejects tokens that
// are malformed or already expired. This is a courtesy check so a stale
// credential fails at startup instead of on the first request.
func checkToken(token string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return common.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return common.ErrTokenExpired
	}
	return nil
}

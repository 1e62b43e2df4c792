package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pneutrack/backend/internal/constants"
)

// TokenClaims is the JWT payload issued at login. The session id points at
// the cache-backed session; email and role are carried for convenience so
// the middleware can build claims even if the session store is briefly
// unavailable for reads.
type TokenClaims struct {
	SessionID string         `json:"sid"`
	Role      constants.Role `json:"role"`
	jwt.RegisteredClaims
}

// SignSessionToken issues a signed token for a logged-in user
func SignSessionToken(secret []byte, sessionID, email string, role constants.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token and returns its claims
func ParseSessionToken(secret []byte, tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return &claims, nil
}

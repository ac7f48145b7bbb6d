package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dnavault.com/internal/domain"
)

// TokenManager issues and resolves HS256 bearer tokens. Resolution consults
// the denylist so revoked tokens stop working before they expire.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	denylist *Denylist
}

func NewTokenManager(secret string, ttl time.Duration, denylist *Denylist) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
	}
}

// Issue signs a token carrying the user id.
func (m *TokenManager) Issue(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Resolve validates tokenString and returns the user id it was issued for.
// Invalid, expired and revoked tokens all come back as a 401-class error.
func (m *TokenManager) Resolve(ctx context.Context, tokenString string) (uint, error) {
	revoked, err := m.denylist.IsRevoked(ctx, tokenString)
	if err != nil {
		return 0, domain.NewInternalError("token revocation check failed", err)
	}
	if revoked {
		return 0, domain.NewUnauthorizedError("Token has been revoked")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.NewUnauthorizedError("Invalid token claims")
	}

	id, ok := claims["id"].(float64) // JSON numbers decode as float64
	if !ok || id <= 0 {
		return 0, domain.NewUnauthorizedError("Invalid token claims")
	}

	return uint(id), nil
}

// Revoke places tokenString on the denylist for the remainder of its
// lifetime. Unparseable tokens need no entry and are ignored.
func (m *TokenManager) Revoke(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	ttl := m.ttl
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	return m.denylist.Revoke(ctx, tokenString, ttl)
}

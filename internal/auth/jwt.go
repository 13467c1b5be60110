package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in catalog tokens. Only librarians may change the catalog.
const (
	RoleLibrarian = "LIBRARIAN"
	RoleReader    = "READER"
)

var ErrForbidden = errors.New("role not allowed")

type Claims struct {
	Sub  string `json:"sub"`  // staff member or client name
	Role string `json:"role"` // LIBRARIAN/READER
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for subject with the given role.
func GenerateToken(secret, subject, role string, ttl time.Duration) (string, error) {
	if role != RoleLibrarian && role != RoleReader {
		return "", fmt.Errorf("role %q: %w", role, ErrForbidden)
	}
	now := time.Now()
	c := Claims{
		Sub:  subject,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseToken validates tokenStr and returns its claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// CanWrite reports whether the claims allow catalog mutations.
func (c *Claims) CanWrite() bool {
	return c.Role == RoleLibrarian
}

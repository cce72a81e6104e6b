package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/habitpulse/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Alive reports whether the token may be used at now. Tokens without an expiry are rejected.
func (c *JWTClaims) Alive(now time.Time) bool {
	if c.ExpiresAt == nil || !c.ExpiresAt.Time.After(now) {
		return false
	}
	return c.NotBefore == nil || !c.NotBefore.Time.After(now)
}

func (c *JWTClaims) UID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

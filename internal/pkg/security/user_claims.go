package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultExpiration = 7 * 24 * time.Hour
	DefaultIssuer     = "StorySphere"
)

// UserClaims Token 中携带的身份信息
type UserClaims struct {
	UserID uint64 `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

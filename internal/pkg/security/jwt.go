package security

import (
	"StorySphere/internal/api/config"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	mu         sync.RWMutex
	secret     = []byte("storysphere-dev-secret")
	expiration = DefaultExpiration
	issuer     = DefaultIssuer
)

// Setup 从配置加载签名密钥与有效期
func Setup(cfg config.JWTConfig) {
	mu.Lock()
	defer mu.Unlock()

	if cfg.Secret != "" {
		secret = []byte(cfg.Secret)
	}
	if cfg.ExpirationHours > 0 {
		expiration = time.Duration(cfg.ExpirationHours) * time.Hour
	}
	if cfg.Issuer != "" {
		issuer = cfg.Issuer
	}
}

// Expiration 当前签发 Token 的有效期
func Expiration() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return expiration
}

// GenerateToken 生成一个新的 JWT Token
func GenerateToken(userID uint64, email, role string) (string, error) {
	mu.RLock()
	key, ttl, iss := secret, expiration, issuer
	mu.RUnlock()

	now := time.Now()
	claims := &UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    iss,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken 验证 Token 字符串并解析出 Claims
func ValidateToken(tokenString string) (*UserClaims, error) {
	mu.RLock()
	key := secret
	mu.RUnlock()

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token invalid or expired")
	}

	return claims, nil
}

// ExtractSignature 从 Token 字符串中提取签名，作为吊销黑名单的 key
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[2] == "" {
		return "", errors.New("malformed token")
	}
	return parts[2], nil
}

package middleware

import (
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/pkg/security"
	"StorySphere/internal/service"
	"context"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// RevocationChecker 查询 Token 是否已注销
type RevocationChecker interface {
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context，checker 为 nil 时不检查注销
func AuthMiddleware(checker RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, service.ErrTokenMissing.Error())
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			response.Fail(c, response.Unauthorized, service.ErrTokenMissing.Error())
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			return
		}

		if checker != nil {
			signature, err := security.ExtractSignature(tokenString)
			if err != nil {
				response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
				return
			}
			revoked, err := checker.IsRevoked(c.Request.Context(), signature)
			if err != nil {
				log.ErrorContext(c.Request.Context(), "Token revocation lookup failed", "err", err)
				response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
				return
			}
			if revoked {
				response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)

		newCtx := context.WithValue(c.Request.Context(), UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"crisis-server/internal/model"
)

// ContextKeyUserID is the gin context key under which the authenticated user
// id is stored.
const ContextKeyUserID = "user_id"

// TokenVerifier abstracts JWT verification so handlers can be tested without
// real tokens.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenString string) (*model.Claims, error)
}

// AuthMiddleware проверяет Bearer токен и кладет uuid пользователя в контекст.
func AuthMiddleware(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Authorization header missing")
			abortWithTokenError(c, model.ErrTokenInvalid)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			abortWithTokenError(c, model.ErrTokenInvalid)
			return
		}

		claims, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn("Access token verification failed", zap.Error(err))
			abortWithTokenError(c, err)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			log.Warn("Token carries non-uuid user id", zap.String("userID", claims.UserID))
			abortWithTokenError(c, model.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// UserIDFromContext извлекает uuid пользователя, установленный AuthMiddleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}

func abortWithTokenError(c *gin.Context, err error) {
	code := model.ErrCodeTokenInvalid
	if errors.Is(err, model.ErrTokenExpired) {
		code = model.ErrCodeTokenExpired
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
		Code:    code,
		Message: "Authentication required",
	})
}

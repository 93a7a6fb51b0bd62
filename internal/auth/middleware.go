package auth

import (
	"net/http"
	"strings"

	"Karyatra/be/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "auth.user_id"

// RequireAuth validates the Bearer token and stores the caller's user id
// in the gin context.
func RequireAuth(cfg config.JWTConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SecretKey), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		// JSON numbers decode as float64.
		id, ok := claims["id"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		ctx.Set(userIDKey, int64(id))
		ctx.Next()
	}
}

// UserID returns the authenticated caller's id, or 0 outside an
// authenticated route.
func UserID(ctx *gin.Context) int64 {
	if id, ok := ctx.Get(userIDKey); ok {
		if v, ok := id.(int64); ok {
			return v
		}
	}
	return 0
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"novelas-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware gates every protected route. A missing header is the
// unauthenticated case (401); a present but unusable token — wrong prefix,
// bad signature, expired — is forbidden (403). Downstream handlers read the
// authenticated id via c.GetUint("user_id").
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token não enviado"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		idFloat, ok := claims["id"].(float64)
		if !ok || idFloat <= 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(idFloat))
		c.Next()
	}
}

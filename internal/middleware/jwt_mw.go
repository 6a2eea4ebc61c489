package middleware

import (
	"net/http"
	"strings"

	"oficina_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthCPFKey  = "authCPF"
	AuthRoleKey = "authRole"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. A missing
// or invalid token ends the request with 401; the role check downstream
// never sees it.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de acesso ausente"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Formato de autorização inválido"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token inválido ou expirado"})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthCPFKey, claims.CPF)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}

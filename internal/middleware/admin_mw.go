package middleware

import (
	"net/http"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminMiddleware permits the request only when the authenticated user's
// stored role is admin. The role claim in the token is deliberately not
// trusted: the Usuario row is loaded fresh, so a demoted admin is locked
// out as soon as the row changes. Must run after JWTAuthMiddleware.
func AdminMiddleware(userRepo repository.UserRepository, log *logrus.Logger) gin.HandlerFunc {
	entry := log.WithField("component", "admin_mw")
	return func(c *gin.Context) {
		userIDVal, exists := c.Get(AuthUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de acesso ausente"})
			return
		}
		userID, ok := userIDVal.(int)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Identidade inválida no token"})
			return
		}

		usuario, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			entry.Errorf("failed to load user %d for admin check: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Erro interno do servidor"})
			return
		}
		if usuario == nil || usuario.Papel != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "acesso negado, privilegio de administrador"})
			return
		}

		c.Next()
	}
}

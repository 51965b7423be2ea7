package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/BarbeariaNavalha/booking-engine/internal/config"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
)

const adminTokenHeader = "X-Admin-Token"

// AdminTokenMiddleware protege as rotas administrativas com um token
// estático compartilhado. Gestão de identidade fica fora deste serviço.
func AdminTokenMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(adminTokenHeader)

		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
			httperr.Unauthorized(c, "invalid_admin_token", "Token administrativo inválido.")
			c.Abort()
			return
		}

		c.Next()
	}
}

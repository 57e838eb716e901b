package middleware

import (
	"net/http"

	"castanhas_back_end/internal/config"

	"github.com/gin-gonic/gin"
)

// RequireAdmin libera apenas a conta do dono da loja.
// Não é um sistema de papéis: é igualdade de e-mail contra ADMIN_EMAIL.
func RequireAdmin(c *gin.Context) {
	email := c.GetString("email")
	if email == "" || email != config.AdminEmail() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acesso restrito ao administrador"})
		c.Abort()
		return
	}
	c.Next()
}

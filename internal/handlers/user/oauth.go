package user

import (
	"context"
	"log"
	"net/http"

	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

//
// 🟢 GET /api/auth/:provider
//
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum provider informado"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🟢 GET /api/auth/:provider/callback
//
// Completa o login social e devolve o mesmo JWT do login por senha.
// Cria usuário e perfil de fidelidade no primeiro acesso.
//
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum provider informado"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var user models.User
	err = database.Scylla.Query(`SELECT email, user_id, name, password, provider FROM users WHERE email = ?`, gothUser.Email).
		WithContext(ctx).Scan(&user.Email, &user.ID, &user.Name, &user.Password, &user.Provider)
	if err != nil {
		// primeiro acesso — cria conta social
		user = models.User{
			ID:       uuid.New().String(),
			Name:     gothUser.Name,
			Email:    gothUser.Email,
			Provider: gothUser.Provider,
		}
		err = database.Scylla.Query(`INSERT INTO users (email, user_id, name, password, provider) VALUES (?, ?, ?, '', ?)`,
			user.Email, user.ID, user.Name, user.Provider).
			WithContext(ctx).Exec()
		if err != nil {
			log.Println("❌ Erro ao criar usuário social:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
			return
		}
		err = database.Scylla.Query(`INSERT INTO profiles (user_id, full_name, points) VALUES (?, ?, 0)`,
			user.ID, user.Name).WithContext(ctx).Exec()
		if err != nil {
			log.Println("⚠️ Erro ao criar perfil de fidelidade:", err)
		}
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"provider": gothUser.Provider,
		"userId":   user.ID,
		"email":    user.Email,
		"name":     user.Name,
	})
}

package user

import (
	"log"
	"net/http"
	"strings"

	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ================== AUTH LOCAL ==================

//
// 🟢 POST /api/users
//
func CreateUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// e-mail já cadastrado?
	var existingID string
	err := database.Scylla.Query(`SELECT user_id FROM users WHERE email = ?`, email).
		WithContext(ctx).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe uma conta com este e-mail"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    email,
		Password: hashed,
		Provider: "local",
	}

	err = database.Scylla.Query(`INSERT INTO users (email, user_id, name, password, provider) VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.ID, user.Name, user.Password, user.Provider).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Erro ao criar usuário:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	// todo cadastro nasce com perfil de fidelidade zerado
	err = database.Scylla.Query(`INSERT INTO profiles (user_id, full_name, points) VALUES (?, ?, 0)`,
		user.ID, user.Name).WithContext(ctx).Exec()
	if err != nil {
		log.Println("⚠️ Erro ao criar perfil de fidelidade:", err)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
	})
}

//
// 🟢 POST /api/login
//
// Falha de autenticação volta como mensagem única — o front exibe inline
// e mantém o formulário editável para nova tentativa.
//
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	err := database.Scylla.Query(`SELECT email, user_id, name, password, provider FROM users WHERE email = ?`, email).
		WithContext(ctx).Scan(&user.Email, &user.ID, &user.Name, &user.Password, &user.Provider)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha incorretos"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha incorretos"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
	})
}

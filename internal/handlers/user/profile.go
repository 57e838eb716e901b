package user

import (
	"log"
	"net/http"

	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/loyalty"
	"castanhas_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/profile
//
// Pontos de fidelidade e nível derivado. Erro de leitura degrada para
// perfil ausente (o front mostra a visão de convidado).
//
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	var profile models.Profile
	profile.UserID = userID

	err := database.Scylla.Query(`SELECT full_name, points FROM profiles WHERE user_id = ?`, userID).
		WithContext(c.Request.Context()).Scan(&profile.FullName, &profile.Points)
	if err != nil {
		log.Println("❌ Erro lendo perfil:", err)
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}

	tier := loyalty.TierFor(profile.Points)
	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"tier":      tier,
		"progress":  tier.Progress(profile.Points),
		"remaining": tier.Remaining(profile.Points),
	})
}

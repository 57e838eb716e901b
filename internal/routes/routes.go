package routes

import (
	"os"
	"time"

	"castanhas_back_end/internal/handlers/admin"
	"castanhas_back_end/internal/handlers/product"
	"castanhas_back_end/internal/handlers/user"
	"castanhas_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Catálogo
	api.GET("/products", product.GetProducts)
	api.GET("/products/search", product.SearchProducts)

	// Auth
	api.POST("/users", user.CreateUser)
	api.POST("/login", user.Login)
	api.GET("/auth/:provider", user.BeginAuth)
	api.GET("/auth/:provider/callback", user.CallbackAuth)

	// Carrinho e checkout funcionam logado ou como visitante
	// (visitante identifica o carrinho pelo header X-Cart-Token)
	shop := api.Group("", middleware.OptionalAuth())
	shop.GET("/cart", user.GetCart)
	shop.POST("/cart/add", user.AddToCart)
	shop.POST("/cart/update", user.UpdateCartQuantity)
	shop.POST("/cart/remove", user.RemoveFromCart)
	shop.POST("/checkout", user.Checkout)

	// Perfil e histórico exigem login
	authed := api.Group("", middleware.AuthRequired())
	authed.GET("/orders", user.GetMyOrders)
	authed.GET("/profile", user.GetProfile)

	// Painel administrativo — só a conta do dono
	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	adm.GET("/orders", admin.GetAllOrders)
	adm.POST("/orders/:id/confirm", admin.ConfirmOrder)
	adm.POST("/products", product.CreateProduct)
	adm.POST("/products/:id/image", product.UploadProductImage)
}

package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"castanhas_back_end/internal/config"
	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/handlers/user"
	"castanhas_back_end/internal/routes"
	"castanhas_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseDatabases()

	services.ConnectMinio()

	initOAuthProviders()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🥜 Servidor NS Castanhas no ar na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erro ao subir o servidor:", err)
	}
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET ausente — login social desativado")
		return
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false em dev, true em produção
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	// O provider vem do path (/api/auth/:provider) via contexto; query e
	// form ficam como alternativas.
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		if provider, ok := req.Context().Value(user.ProviderKey).(string); ok && provider != "" {
			return provider, nil
		}
		return "", errors.New("provider não encontrado")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	var providers []goth.Provider

	if clientID, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); clientID != "" && secret != "" {
		providers = append(providers, google.New(clientID, secret, baseURL+"/api/auth/google/callback"))
		log.Println("✅ Google OAuth ativado")
	}

	if clientID, secret := os.Getenv("FACEBOOK_CLIENT_ID"), os.Getenv("FACEBOOK_CLIENT_SECRET"); clientID != "" && secret != "" {
		providers = append(providers, facebook.New(clientID, secret, baseURL+"/api/auth/facebook/callback"))
		log.Println("✅ Facebook OAuth ativado")
	}

	if len(providers) == 0 {
		log.Println("⚠️ Nenhum provider OAuth configurado")
		return
	}

	goth.UseProviders(providers...)
	log.Printf("✅ %d provider(s) OAuth inicializado(s)", len(providers))
}

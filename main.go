package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kaloyan-drinchev/sink-shop/config"
	checkoutControllers "github.com/kaloyan-drinchev/sink-shop/controllers/checkout"
	"github.com/kaloyan-drinchev/sink-shop/email"
	"github.com/kaloyan-drinchev/sink-shop/routes"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

func main() {
	log.Println("✅ Starting sink shop API...")

	_ = godotenv.Load()
	cfg := config.Load()

	s := initStore(cfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded product images
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	routes.SetupRoutes(r, routes.Deps{
		Store:        s,
		Mailer:       email.New(cfg),
		Payments:     checkoutControllers.NewMockProcessor(),
		UploadDir:    cfg.UploadDir,
		JWTExpiresIn: cfg.JWTExpiresIn,
	})

	log.Printf("✅ Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

// initStore picks the backing store once at startup. Every handler talks
// to the same interface regardless of the choice.
func initStore(cfg config.Config) store.Store {
	if cfg.UseMockData {
		log.Println("⚠️ USE_MOCK_DATA=true — using in-memory mock catalog")
		s := store.NewMemoryStore(store.SeedProducts())
		store.SeedAdmin(s)
		return s
	}

	s, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Database connected successfully")
	return s
}

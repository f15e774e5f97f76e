package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oharris/rota-api-go/pkg/auth"
	"github.com/oharris/rota-api-go/pkg/database"
	"github.com/oharris/rota-api-go/pkg/handlers"
	"github.com/oharris/rota-api-go/pkg/logger"
	"github.com/oharris/rota-api-go/pkg/middleware"
	"github.com/oharris/rota-api-go/pkg/roster"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	if err := roster.EnsureDefaults(db); err != nil {
		log.Fatalf("could not seed default roster: %v", err)
	}

	h := &handlers.Handler{DB: db, Logger: zapLogger}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(zapLogger))

	// Admin interface - serve static files from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Front Desk Rota API",
			"version": "1.1.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)

		admin.GET("/staff", h.ListStaff)
		admin.POST("/staff", h.CreateStaff)
		admin.PUT("/staff/:id", h.UpdateStaff)
		admin.DELETE("/staff/:id", h.DeleteStaff)
	}

	// Rota Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/rota", h.GenerateRota)
		api.POST("/rota/csv", h.GenerateRotaCSV)
		api.POST("/rota/xlsx", h.GenerateRotaXLSX)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oharris/rota-api-go/pkg/auth"
	"github.com/oharris/rota-api-go/pkg/database"
	"github.com/oharris/rota-api-go/pkg/handlers"
	"github.com/oharris/rota-api-go/pkg/logger"
	"github.com/oharris/rota-api-go/pkg/middleware"
	"github.com/oharris/rota-api-go/pkg/roster"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	zapLogger, err := logger.New()
	if err != nil {
		zapLogger = zap.NewNop()
	}

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	_ = roster.EnsureDefaults(db)
	h := &handlers.Handler{DB: db, Logger: zapLogger}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(zapLogger))

	// Static files served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Front Desk Rota API (Vercel)",
			"version": "1.1.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

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

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/rota", h.GenerateRota)
		api.POST("/rota/csv", h.GenerateRotaCSV)
		api.POST("/rota/xlsx", h.GenerateRotaXLSX)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}

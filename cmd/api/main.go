package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cming401/qrbot/internal/handler"
	"github.com/cming401/qrbot/internal/web"
	"github.com/cming401/qrbot/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if os.Getenv("MODE") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	analysisHandler := handler.NewAnalysisHandler(llm.NewClient)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	if err := web.Register(r); err != nil {
		log.Fatalf("error mounting frontend: %v", err)
	}

	r.POST("/analyze", analysisHandler.Analyze)
	r.POST("/upload", analysisHandler.Upload)
	r.GET("/models", analysisHandler.GetModels)
	r.GET("/health", analysisHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"airesume/resume-builder/internal/config"
	"airesume/resume-builder/internal/handlers"
	applogger "airesume/resume-builder/internal/logger"
	"airesume/resume-builder/internal/services"
)

func main() {
	var envFile string
	pflag.StringVarP(&envFile, "env-file", "e", ".env", "Path to .env file")
	pflag.Parse()

	// Load configuration
	cfg := config.Load(envFile)
	applogger.Setup(cfg.Log.Level, cfg.IsDevelopment())
	log.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	// Initialize services
	geminiService := services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	pdfParser := services.NewPDFParserService()
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)
	reviewService := services.NewReviewService(geminiService, pdfParser)
	pdfRenderer := services.NewPDFRenderer(services.PDFRendererOptions{
		PageSize: cfg.PDF.PageSize,
		Margin:   cfg.PDF.Margin,
	})
	log.Info().Str("model", cfg.Gemini.Model).Msg("✅ Services initialized successfully")

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(geminiService)
	reviewHandler := handlers.NewReviewHandler(uploadService, reviewService)
	downloadHandler := handlers.NewDownloadHandler(pdfRenderer)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Builder API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// Room for the multipart envelope around a maximum size upload.
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.SetupRoutes(app, generateHandler, reviewHandler, downloadHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

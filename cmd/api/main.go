package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-builder/internal/config"
	"resume-builder/internal/handlers"
	"resume-builder/internal/repositories"
	"resume-builder/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	parserService := services.NewParserService()
	exporterService := services.NewExporterService(cfg.Export.ChromePath)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	aiService, err := services.NewAIService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	generatorService := services.NewGeneratorService(aiService, cfg.Gemini.MaxRetries)
	analyzerService := services.NewAnalyzerService(aiService, analysisRepo, cfg.Gemini.MaxRetries)

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(resumeRepo)
	renderHandler := handlers.NewRenderHandler(exporterService)
	editorHandler := handlers.NewEditorHandler(generatorService)
	aiHandler := handlers.NewAIHandler(generatorService, analyzerService)
	uploadHandler := handlers.NewUploadHandler(parserService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Builder API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Get("/templates", renderHandler.HandleTemplates)
	api.Post("/render/preview", renderHandler.HandlePreview)
	api.Post("/render/export", renderHandler.HandleExport)
	api.Post("/sections/reorder", renderHandler.HandleReorder)
	api.Post("/upload/extract", uploadHandler.HandleExtract)

	// Authenticated endpoints
	auth := api.Group("", handlers.RequireAuth(cfg.Auth.JWTSecret))
	auth.Get("/resumes", resumeHandler.HandleList)
	auth.Get("/resumes/:id", resumeHandler.HandleGet)
	auth.Post("/resumes", resumeHandler.HandleSave)
	auth.Delete("/resumes/:id", resumeHandler.HandleDelete)
	auth.Post("/resumes/:id/duplicate", resumeHandler.HandleDuplicate)

	auth.Get("/editor", editorHandler.HandleGetDocument)
	auth.Post("/editor/load", editorHandler.HandleLoad)
	auth.Post("/editor/mutate", editorHandler.HandleMutate)
	auth.Post("/editor/generate", editorHandler.HandleGenerate)

	auth.Post("/ai/generate", aiHandler.HandleGenerate)
	auth.Post("/ai/analyze", aiHandler.HandleAnalyze)
	auth.Get("/ai/analyses", aiHandler.HandleAnalyses)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Builder API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/templates",
				"POST /api/v1/render/preview",
				"POST /api/v1/render/export",
				"POST /api/v1/sections/reorder",
				"POST /api/v1/upload/extract",
				"GET /api/v1/resumes",
				"POST /api/v1/resumes",
				"POST /api/v1/resumes/:id/duplicate",
				"POST /api/v1/editor/mutate",
				"POST /api/v1/editor/generate",
				"POST /api/v1/ai/generate",
				"POST /api/v1/ai/analyze",
				"GET /api/v1/ai/analyses",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

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

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/handlers"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load skills vocabulary (read once, immutable for the process lifetime)
	vocabulary, err := config.LoadSkills(cfg.Skills.FilePath)
	if err != nil {
		log.Fatalf("❌ Failed to load skills vocabulary: %v", err)
	}
	log.Printf("✅ Skills vocabulary loaded: %d skills\n", len(vocabulary))

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractorService()
	skillMatcher := services.NewSkillMatcherService(vocabulary)
	vectorizer := services.NewVectorizer(cfg.Analysis.TopTerms)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI (optional; without an API key summaries are
	// simply omitted from responses)
	var summarizer services.SummarizerService
	if cfg.Gemini.APIKey != "" {
		summarizer, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, llm_analysis will be omitted")
	}

	// Initialize analyzer
	analyzer := services.NewAnalyzerService(
		extractor,
		skillMatcher,
		vectorizer,
		summarizer,
		cfg.Gemini.SummaryTimeout,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	skillsHandler := handlers.NewSkillsHandler(skillMatcher)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		Prefork:      cfg.Server.Prefork,
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:  "healthy",
			Message: "Resume Analyzer API is running",
		})
	})

	// API endpoints
	app.Get("/skills", skillsHandler.HandleListSkills)
	app.Post("/analyze", analyzeHandler.HandleAnalyze)
	app.Post("/analyze-resume-only", analyzeHandler.HandleAnalyzeResumeOnly)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /health",
				"GET /skills",
				"POST /analyze",
				"POST /analyze-resume-only",
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

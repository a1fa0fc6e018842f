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

	"bonifacengila/cv-portfolio/internal/config"
	"bonifacengila/cv-portfolio/internal/handlers"
	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/repositories"
	"bonifacengila/cv-portfolio/internal/services"
	"bonifacengila/cv-portfolio/internal/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Template registry sanity check. Diagnostics are logged, not fatal: a
	// broken template falls back to the classic layout at render time.
	for _, diag := range templates.Validate() {
		log.Printf("⚠️  Template registry: %s\n", diag)
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	versionRepo := repositories.NewVersionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// First run: seed one default profile so the public page always has
	// something to show.
	if err := seedDefaultProfile(profileRepo); err != nil {
		log.Fatalf("❌ Failed to seed default profile: %v", err)
	}

	// Initialize services
	sessionService := services.NewSessionService(cfg.Editor.Password, cfg.Editor.SessionTTL)
	htmlRenderer := services.NewHTMLRenderer()
	pdfRenderer := services.NewPDFRenderer(!cfg.PDF.Disabled)
	if cfg.PDF.Disabled {
		log.Println("⚠️  PDF generation disabled (CV_DISABLE_PDF)")
	}
	if !sessionService.PasswordConfigured() {
		log.Println("⚠️  CV_EDITOR_PASSWORD not set; editor routes will reject logins")
	}
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	profileHandler := handlers.NewProfileHandler(profileRepo, versionRepo)
	versionHandler := handlers.NewVersionHandler(profileRepo, versionRepo)
	renderHandler := handlers.NewRenderHandler(versionRepo, htmlRenderer, pdfRenderer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Portfolio API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
	app.Get("/", renderHandler.HandleViewCV)
	api.Get("/templates", renderHandler.HandleListTemplates)
	api.Get("/render/html", renderHandler.HandleRenderHTML)
	api.Get("/render/pdf", renderHandler.HandleRenderPDF)

	// Auth
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Post("/auth/logout", authHandler.HandleLogout)

	// Editor endpoints
	editor := api.Group("/editor", authHandler.RequireAuth)
	editor.Get("/profiles", profileHandler.HandleListProfiles)
	editor.Post("/profiles", profileHandler.HandleCreateProfile)
	editor.Post("/profiles/:id/default", profileHandler.HandleSetDefault)
	editor.Get("/profiles/:id/versions", versionHandler.HandleListVersions)
	editor.Get("/versions/:id", versionHandler.HandleGetVersion)
	editor.Put("/versions/:id", versionHandler.HandleUpdateVersion)
	editor.Post("/versions/:id/fork", versionHandler.HandleForkVersion)

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
	log.Printf("📖 Public CV: http://localhost%s/\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

// seedDefaultProfile creates the initial profile with a sample document when
// the database is empty, and marks it as the default.
func seedDefaultProfile(profileRepo repositories.ProfileRepository) error {
	count, err := profileRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile, err := profileRepo.Create("Default", models.DefaultDocument())
	if err != nil {
		return err
	}
	if err := profileRepo.SetDefault(profile.ID); err != nil {
		return err
	}
	log.Println("✅ Seeded default profile")
	return nil
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

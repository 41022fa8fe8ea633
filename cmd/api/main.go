package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"book-to-movie/internal/config"
	"book-to-movie/internal/handler"
	"book-to-movie/internal/middleware"
	"book-to-movie/internal/repository"
	"book-to-movie/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (list caching disabled)", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (cover upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	// Reads are public; everything that writes requires a valid token.
	suggestions := api.Group("/suggestions")
	suggestions.Get("/", h.Suggestion.List)
	suggestions.Get("/:id", h.Suggestion.GetByID)
	suggestions.Post("/", middleware.AuthRequired(authService), h.Suggestion.Create)
	suggestions.Put("/:id", middleware.AuthRequired(authService), h.Suggestion.Update)
	suggestions.Post("/:id/upvote", middleware.AuthRequired(authService), h.Suggestion.Upvote)
	suggestions.Delete("/:id/upvote", middleware.AuthRequired(authService), h.Suggestion.RemoveUpvote)

	api.Get("/search", h.Suggestion.Search)

	comments := api.Group("/comments/:suggestionId")
	comments.Get("/", h.Comment.List)
	comments.Post("/", middleware.AuthRequired(authService), h.Comment.Create)

	users := api.Group("/users", middleware.AuthRequired(authService))
	users.Get("/me", h.User.GetMe)
	users.Put("/me", h.User.UpdateMe)
	users.Get("/:id", h.User.GetByID)

	stories := api.Group("/original-stories", middleware.AuthRequired(authService))
	stories.Post("/", h.OriginalStory.Create)
	stories.Get("/", h.OriginalStory.ListMine)

	notifications := api.Group("/notifications", middleware.AuthRequired(authService))
	notifications.Get("/", h.Notification.List)
	notifications.Put("/:id/read", h.Notification.MarkRead)

	media := api.Group("/media", middleware.AuthRequired(authService))
	media.Post("/covers", h.Media.UploadCover)

	admin := api.Group("/admin", middleware.AuthRequired(authService), middleware.RequireRole("admin"))
	admin.Get("/suggestions/pending", h.Suggestion.ListPending)
	admin.Put("/suggestions/:id/status", h.Suggestion.Moderate)
}

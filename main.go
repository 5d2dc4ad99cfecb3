package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cardvault/internal/handlers"
	"cardvault/internal/middleware"
	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/services"
	"cardvault/pkg/events"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "your-secret-key") // development-only fallback; deployments must override
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "cardvault.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Note{},
		&models.Trade{},
		&models.WishlistItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Events (optional) ---
	// Without a broker URL the client stays nil and publishing is a no-op.
	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	cardRepo := repositories.NewGORMCardRepository(db)
	noteRepo := repositories.NewGORMNoteRepository(db)
	tradeRepo := repositories.NewGORMTradeRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	cardService := services.NewCardService(cardRepo, noteRepo, mqClient)
	noteService := services.NewNoteService(noteRepo, cardRepo)
	tradeService := services.NewTradeService(tradeRepo, mqClient)
	wishlistService := services.NewWishlistService(wishlistRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	cardHandler := handlers.NewCardHandler(cardService)
	noteHandler := handlers.NewNoteHandler(noteService)
	tradeHandler := handlers.NewTradeHandler(tradeService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Authentication routes (public)
	authHandler.RegisterRoutes(apiV1)

	// Protected routes (require a valid bearer token)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	cardHandler.RegisterRoutes(protectedRoutes)
	noteHandler.RegisterRoutes(protectedRoutes)
	tradeHandler.RegisterRoutes(protectedRoutes)
	wishlistHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured GORM backend. SQLite is the default;
// postgres is selected with DB_DRIVER=postgres and a connection DSN.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

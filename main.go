package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/github"
	"inventory/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017/")
	viper.SetDefault("MONGODB_DATABASE", "inventory")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- MongoDB ---
	client, err := database.Connect(viper.GetString("MONGODB_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	db := client.Database(viper.GetString("MONGODB_DATABASE"))
	log.Println("Connected to MongoDB")

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- GitHub OAuth (optional) ---
	var oauthClient *github.Client
	if clientID := viper.GetString("GITHUB_CLIENT_ID"); clientID != "" {
		oauthClient = github.NewClient(github.Config{
			ClientID:     clientID,
			ClientSecret: viper.GetString("GITHUB_CLIENT_SECRET"),
			CallbackURL:  viper.GetString("GITHUB_CALLBACK_URL"),
		})
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewMongoProductRepository(db)
	supplierRepo := repositories.NewMongoSupplierRepository(db)
	userRepo := repositories.NewMongoUserRepository(db)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to ensure user indexes: %v", err)
	}
	cancel()

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, mqClient)
	supplierService := services.NewSupplierService(supplierRepo, mqClient)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"), mqClient)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService, oauthClient, viper.GetString("FRONTEND_URL"))

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New())
	// Resolve the caller's identity on every request; anonymous is fine.
	app.Use(middleware.Authenticate(authService))

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	supplierHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	// --- Root and Health Endpoints ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Inventory Management API",
			"endpoints": fiber.Map{
				"products":  "/api/products",
				"suppliers": "/api/suppliers",
				"auth":      "/api/auth",
			},
			"version": "1.0.0",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start Event Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for inventory events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received inventory event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

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

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/provision-store/provision-backend-go/config"
	"github.com/provision-store/provision-backend-go/database"
	"github.com/provision-store/provision-backend-go/handlers"
	customMiddleware "github.com/provision-store/provision-backend-go/middleware"
	"github.com/provision-store/provision-backend-go/routes"
	"github.com/provision-store/provision-backend-go/store"
	"github.com/provision-store/provision-backend-go/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.Metrics())

	// Connect to MongoDB
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	users := store.NewMongoUserStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWTSecret)

	routes.SetupRoutes(e,
		handlers.NewAuthHandler(users, jwtManager),
		handlers.NewUserHandler(users),
		handlers.NewOrderHandler(users),
		jwtManager,
	)

	fmt.Printf("🚀 Server starting on port %s...\n", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/provision-store/provision-backend-go/handlers"
	customMiddleware "github.com/provision-store/provision-backend-go/middleware"
	"github.com/provision-store/provision-backend-go/utils"
)

func SetupRoutes(e *echo.Echo, auth *handlers.AuthHandler, users *handlers.UserHandler, orders *handlers.OrderHandler, jwtManager *utils.JWTManager) {
	// Public routes
	e.GET("/api/health", handlers.Health)
	e.GET("/api/products", handlers.ListProducts)
	e.POST("/api/auth/register", auth.Register)
	e.POST("/api/auth/login", auth.Login)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Protected API routes
	api := e.Group("/api", customMiddleware.Auth(jwtManager))

	api.GET("/user/profile", users.GetProfile)
	api.PUT("/user/profile", users.UpdateProfile)
	api.POST("/user/favorites", users.AddFavorite)
	api.DELETE("/user/favorites/:productId", users.RemoveFavorite)

	api.POST("/orders", orders.CreateOrder)
}

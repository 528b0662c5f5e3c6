package routes

import (
	"reflect"
	"strings"

	"org-portal-backend/internal/api/handlers"
	"org-portal-backend/internal/api/middleware"
	"org-portal-backend/internal/auth"
	"org-portal-backend/internal/config"
	"org-portal-backend/internal/repository"
	"org-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator; report json field names in validation errors
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Initialize token service and auth middleware
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(tokenService)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, validate)
	orgService := service.NewOrganizationService(orgRepo, userRepo, membershipRepo, validate)
	userService := service.NewUserService(userRepo, membershipRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API routes - all endpoints require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		organizations := api.Group("/organizations")
		{
			organizations.GET("", orgHandler.ListOrganizations)
			organizations.POST("", orgHandler.CreateOrganization)
			organizations.GET("/:orgId", orgHandler.GetOrganization)
			organizations.POST("/:orgId/users", orgHandler.AddMember)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":     "Not Found",
			"message":    "Endpoint not found",
			"statusCode": 404,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

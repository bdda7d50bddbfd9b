package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-portal/internal/config"
	"team-portal/internal/delivery/http/handler"
	"team-portal/internal/infrastructure/database/postgres"
	"team-portal/internal/logger"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/meeting"
	"team-portal/internal/usecase/progress"
	"team-portal/internal/usecase/project"
	"team-portal/internal/usecase/resource"
	"team-portal/internal/usecase/task"
	"team-portal/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	userService := user.NewService(userRepository, cfg)
	userHandler := handler.NewUserHandler(userService, cfg)

	progressRepository := postgres.NewProgressRepository(db)
	progressService := progress.NewService(progressRepository, userRepository)
	progressHandler := handler.NewProgressHandler(progressService)

	taskRepository := postgres.NewTaskRepository(db)
	taskService := task.NewService(taskRepository, userRepository)
	taskHandler := handler.NewTaskHandler(taskService)

	meetingRepository := postgres.NewMeetingRepository(db)
	meetingService := meeting.NewService(meetingRepository)
	meetingHandler := handler.NewMeetingHandler(meetingService)

	projectRepository := postgres.NewProjectRepository(db)
	projectService := project.NewService(projectRepository)
	projectHandler := handler.NewProjectHandler(projectService)

	resourceRepository := postgres.NewResourceRepository(db)
	resourceService := resource.NewService(resourceRepository)
	resourceHandler := handler.NewResourceHandler(resourceService)

	api := router.Group("/api")
	{
		userHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProtectedRoutes(protected)
			progressHandler.RegisterProtectedRoutes(protected)
			taskHandler.RegisterProtectedRoutes(protected)
			meetingHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterProtectedRoutes(protected)
			resourceHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				progressHandler.RegisterAdminRoutes(admin)
				taskHandler.RegisterAdminRoutes(admin)
				meetingHandler.RegisterAdminRoutes(admin)
				projectHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}

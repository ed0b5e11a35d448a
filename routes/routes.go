package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentpro-backend/config"
	"rentpro-backend/controllers"
	"rentpro-backend/services"
	"rentpro-backend/utils"
)

func SetupRouter(engine *services.Engine) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	notificationController := controllers.NotificationController{Engine: engine}
	settingsController := controllers.SettingsController{Engine: engine}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Notification engine control surface
		notifications := api.Group("/notifications")
		{
			notifications.POST("/scan/:kind", notificationController.TriggerScan)
			notifications.POST("/execute", notificationController.TriggerExecution)
			notifications.GET("/schedulers", notificationController.SchedulerStatus)
			notifications.POST("/schedulers/reload", notificationController.ReloadSchedulers)
			notifications.GET("/statistics", notificationController.Statistics)
			notifications.GET("/jobs", notificationController.ListJobs)
			notifications.GET("/history", notificationController.ListHistory)
		}

		// SMS template routes
		templates := api.Group("/templates")
		{
			templates.POST("", controllers.CreateTemplate)
			templates.GET("", controllers.GetTemplates)
			templates.GET("/:id", controllers.GetTemplate)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.PUT("/:key", settingsController.UpdateSetting)
		}

		// Payment penalty lookup
		api.GET("/payments/:id/penalty", controllers.GetPaymentPenalty)
	}

	return r
}

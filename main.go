package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rentpro-backend/config"
	"rentpro-backend/models"
	"rentpro-backend/routes"
	"rentpro-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Space{},
		&models.Payment{},
		&models.Contract{},
		&models.NotificationJob{},
		&models.SmsTemplate{},
		&models.SmsHistory{},
		&models.PenaltyPeriod{},
		&models.Setting{},
	)

	config.SeedDefaults()
}

func main() {
	engine := services.NewEngine(config.DB, services.NewTwilioTransport(), config.Log)
	engine.Scheduler.Start()
	defer engine.Scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(engine)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

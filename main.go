package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/skill-swap/admin-go/config"
	"github.com/skill-swap/admin-go/moderation"
	"github.com/skill-swap/admin-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize the moderation engine
	engine := moderation.NewEngine()
	if cfg.SeedDemoData {
		moderation.SeedDemoData(engine)
	}

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, engine, cfg)

	// Start the server
	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"pltp-shift-backend/config"
	"pltp-shift-backend/internal/logger"
	"pltp-shift-backend/internal/routes"
)

func main() {
	log := logger.Get()

	if err := godotenv.Load(); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())        // Agar API bisa diakses dari dashboard di domain/port lain
	app.Use(fiberlogger.New()) // Log request di terminal

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupChangeOverRoutes(app, config.DB)
	routes.SetupLogEntryRoutes(app, config.DB)
	routes.SetupSOPRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	log.Infof("Server siap! Menunggu request di port :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server berhenti: %v", err)
	}
}

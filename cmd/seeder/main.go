package main

import (
	"github.com/joho/godotenv"

	"pltp-shift-backend/config"
	"pltp-shift-backend/internal/database"
	"pltp-shift-backend/internal/logger"
)

func main() {
	log := logger.Get()
	log.Info("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	database.SeedAll(config.DB)

	log.Info("Seeding Selesai!")
}

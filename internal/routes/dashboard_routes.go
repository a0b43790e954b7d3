package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/handler"
	"pltp-shift-backend/internal/middleware"
	"pltp-shift-backend/internal/repository"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	taskRepo := repository.NewChangeOverRepository(db)
	logRepo := repository.NewLogEntryRepository(db)
	hdl := handler.NewDashboardHandler(taskRepo, logRepo)

	api := app.Group("/api/dashboard", middleware.Auth)
	api.Get("/notifications", hdl.GetNotifications)
	api.Get("/summary", hdl.GetSummary)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/handler"
	"pltp-shift-backend/internal/middleware"
	"pltp-shift-backend/internal/repository"
)

func SetupLogEntryRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLogEntryRepository(db)
	hdl := handler.NewLogEntryHandler(repo)

	api := app.Group("/api/logs", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Delete("/:id", middleware.Role("admin"), hdl.Delete)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/handler"
	"pltp-shift-backend/internal/middleware"
	"pltp-shift-backend/internal/repository"
)

func SetupSOPRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewSOPRepository(db)
	hdl := handler.NewSOPHandler(repo)

	api := app.Group("/api/sop", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/sop", middleware.Auth, middleware.Role("admin"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}

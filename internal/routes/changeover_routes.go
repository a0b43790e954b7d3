package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/handler"
	"pltp-shift-backend/internal/middleware"
	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/usecase"
)

func SetupChangeOverRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewChangeOverRepository(db)
	logRepo := repository.NewLogEntryRepository(db)
	uc := usecase.NewChangeOverUsecase(repo, logRepo)
	hdl := handler.NewChangeOverHandler(repo, uc)

	api := app.Group("/api/changeover", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Get("/:id/next-target", hdl.GetNextTarget)
	api.Post("/:id/execute", hdl.Execute)

	// Kelola jadwal hanya oleh admin
	admin := app.Group("/api/changeover", middleware.Auth, middleware.Role("admin"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}

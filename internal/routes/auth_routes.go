package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pltp-shift-backend/internal/handler"
	"pltp-shift-backend/internal/middleware"
	"pltp-shift-backend/internal/repository"
	"pltp-shift-backend/internal/usecase"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
	// Pendaftaran akun hanya oleh admin
	api.Post("/register", middleware.Auth, middleware.Role("admin"), hdl.Register)
}

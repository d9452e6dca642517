package routes

import (
	"Backend-Firewatch-115/src/controllers"
	"Backend-Firewatch-115/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/logout/me)
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", controllers.LoginUser) // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetCurrentUser)
	auth.Post("/change-password", middleware.AuthJWT, controllers.ChangePassword)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes ลงทะเบียน route ทั้งหมดของระบบ
func InitRoutes(app *fiber.App) {
	authRoutes(app)
	userRoutes(app)
	absenceRoutes(app)
	questionRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

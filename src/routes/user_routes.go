package routes

import (
	"Backend-Firewatch-115/src/controllers"
	"Backend-Firewatch-115/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ User API
func userRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Use(middleware.AuthJWT)
	users.Get("/", controllers.GetUsers)    // ดึงผู้ใช้ทั้งหมด
	users.Post("/", controllers.CreateUser) // สร้างผู้ใช้ใหม่
	users.Get("/active", controllers.GetActiveUsers)
	users.Get("/:id", controllers.GetUserByID)   // ดึงข้อมูลผู้ใช้ตาม ID
	users.Put("/:id", controllers.UpdateUser)    // อัปเดตข้อมูลผู้ใช้
	users.Delete("/:id", controllers.DeleteUser) // ปิดใช้งานผู้ใช้
}

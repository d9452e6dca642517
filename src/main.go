package main

import (
	_ "Backend-Firewatch-115/docs"
	"Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/jobs"
	"Backend-Firewatch-115/src/routes"
	"Backend-Firewatch-115/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Firewatch Absence API
// @description HR absence tracking and risk assessment for fire department personnel
// @version 1.0
func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// เติมข้อมูลตั้งต้นเมื่อเปิดใช้ SEED_DB
	if os.Getenv("SEED_DB") == "true" {
		if err := seeder.SeedAll(); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
	}

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// worker สำหรับงาน escalation และ reminder (ข้ามถ้าไม่มี Redis)
	jobs.StartWorker()

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}

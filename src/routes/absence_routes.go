package routes

import (
	"Backend-Firewatch-115/src/controllers"
	"Backend-Firewatch-115/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// absenceRoutes กำหนดเส้นทางสำหรับ Absence API
func absenceRoutes(app *fiber.App) {
	absences := app.Group("/absences")
	absences.Use(middleware.AuthJWT)

	// static routes ต้องมาก่อน /:id
	absences.Get("/", controllers.SearchAbsences)
	absences.Post("/", controllers.CreateAbsence)
	absences.Get("/types", controllers.GetAbsenceTypes)
	absences.Get("/active", controllers.GetActiveAbsences)
	absences.Get("/statistics", controllers.GetAbsenceStatistics)
	absences.Get("/employee/:employeeId", controllers.GetAbsencesByEmployee)
	absences.Get("/manager/:managerId", controllers.GetAbsencesByManager)
	absences.Post("/workflow/:stepId/complete", controllers.CompleteWorkflowStep)

	absences.Get("/:id", controllers.GetAbsenceByID)
	absences.Get("/:id/details", controllers.GetAbsenceWithDetails)
	absences.Put("/:id", controllers.UpdateAbsence)
	absences.Patch("/:id/status", controllers.UpdateAbsenceStatus)
	absences.Get("/:id/workflow", controllers.GetWorkflowSteps)
	absences.Post("/:id/conversation", controllers.SaveConversation)
	absences.Get("/:id/conversation", controllers.GetConversation)
}

package routes

import (
	"Backend-Firewatch-115/src/controllers"
	"Backend-Firewatch-115/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// questionRoutes กำหนดเส้นทางสำหรับ Question API
func questionRoutes(app *fiber.App) {
	questions := app.Group("/questions")
	questions.Use(middleware.AuthJWT)

	// static routes ต้องมาก่อน /:absenceId
	questions.Get("/category/:category", controllers.GetQuestionsByCategory)
	questions.Get("/scenario/:absenceType/:reasonCategory", controllers.GetQuestionsForScenario)
	questions.Get("/dependent/:parentId/:answer", controllers.GetDependentQuestions)
	questions.Get("/return-to-work", controllers.GetReturnToWorkQuestions)
	questions.Get("/flow/:absenceType/:reasonCategory", controllers.GetQuestionFlow)
	questions.Post("/catalog/reload", controllers.ReloadQuestionCatalog)

	questions.Post("/:absenceId/answers", controllers.SaveAbsenceAnswers)
	questions.Get("/:absenceId/answers", controllers.GetAbsenceAnswers)
	questions.Get("/:absenceId/follow-up", controllers.GetFollowUpQuestions)
	questions.Get("/:absenceId/visible/:absenceType/:reasonCategory", controllers.GetVisibleQuestions)
	questions.Get("/:absenceId/risk-assessment", controllers.GetRiskAssessment)
	questions.Get("/:absenceId/mental-health-check", controllers.CheckMentalHealthFollowUp)
}

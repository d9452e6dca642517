package controllers

import (
	"Backend-Firewatch-115/src/models"
	"Backend-Firewatch-115/src/services/questions"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetQuestionsByCategory godoc
// @Summary List question templates of one category
// @Tags questions
// @Produce json
// @Param category path string true "Question category"
// @Success 200 {object} map[string]interface{}
// @Router /questions/category/{category} [get]
func GetQuestionsByCategory(c *fiber.Ctx) error {
	category, err := parsePathValue(c, "category")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid category"})
	}

	list, err := questions.GetQuestionsByCategory(c.Context(), category)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetQuestionsForScenario godoc
// @Summary Root questions for an absence scenario
// @Description Filter root questions by absence type and reason category
// @Tags questions
// @Produce json
// @Param absenceType path string true "Absence type"
// @Param reasonCategory path string true "Reason category"
// @Success 200 {object} map[string]interface{}
// @Router /questions/scenario/{absenceType}/{reasonCategory} [get]
func GetQuestionsForScenario(c *fiber.Ctx) error {
	absenceType, err := parsePathValue(c, "absenceType")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence type"})
	}
	reasonCategory, err := parsePathValue(c, "reasonCategory")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid reason category"})
	}

	list, err := questions.GetQuestionsForAbsence(c.Context(), absenceType, reasonCategory)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetDependentQuestions godoc
// @Summary Follow-up questions unlocked by one answer
// @Tags questions
// @Produce json
// @Param parentId path string true "Parent question ID"
// @Param answer path string true "Answer given to the parent"
// @Success 200 {object} map[string]interface{}
// @Router /questions/dependent/{parentId}/{answer} [get]
func GetDependentQuestions(c *fiber.Ctx) error {
	parentID, err := primitive.ObjectIDFromHex(c.Params("parentId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid parent question id"})
	}
	answer, err := parsePathValue(c, "answer")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid answer"})
	}

	list, err := questions.GetDependentQuestions(c.Context(), parentID, answer)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch dependent questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetReturnToWorkQuestions godoc
// @Summary Return-to-work question templates
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/return-to-work [get]
func GetReturnToWorkQuestions(c *fiber.Ctx) error {
	list, err := questions.GetReturnToWorkQuestions(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetQuestionFlow godoc
// @Summary Question flow tree for a scenario
// @Description Root questions with their dependent groups, keyed by trigger answer
// @Tags questions
// @Produce json
// @Param absenceType path string true "Absence type"
// @Param reasonCategory path string true "Reason category"
// @Success 200 {object} map[string]interface{}
// @Router /questions/flow/{absenceType}/{reasonCategory} [get]
func GetQuestionFlow(c *fiber.Ctx) error {
	absenceType, err := parsePathValue(c, "absenceType")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence type"})
	}
	reasonCategory, err := parsePathValue(c, "reasonCategory")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid reason category"})
	}

	flow, err := questions.GetQuestionFlow(c.Context(), absenceType, reasonCategory)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to build question flow"})
	}
	return c.JSON(fiber.Map{"success": true, "data": flow})
}

// SaveAbsenceAnswers godoc
// @Summary Save answers for an absence and re-assess risk
// @Description Stores the submitted answers, then returns them with the updated risk assessment
// @Tags questions
// @Accept json
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Param answers body models.SaveAnswersRequest true "Answers to save"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /questions/{absenceId}/answers [post]
func SaveAbsenceAnswers(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}

	var req models.SaveAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid input format"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	saved, err := questions.SaveAbsenceAnswers(c.Context(), absenceID, &req)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	assessment, err := questions.AnalyzeAnswersForRisk(c.Context(), absenceID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to assess risk"})
	}
	questions.EscalateIfCritical(absenceID, assessment)

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"savedAnswers":   saved,
			"riskAssessment": assessment,
		},
	})
}

// GetAbsenceAnswers godoc
// @Summary Answers recorded for an absence
// @Tags questions
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{absenceId}/answers [get]
func GetAbsenceAnswers(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}

	answers, err := questions.GetAbsenceAnswers(c.Context(), absenceID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch answers"})
	}
	return c.JSON(fiber.Map{"success": true, "data": answers})
}

// GetFollowUpQuestions godoc
// @Summary Follow-up questions unlocked by the answers so far
// @Tags questions
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{absenceId}/follow-up [get]
func GetFollowUpQuestions(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}

	list, err := questions.GetFollowUpQuestions(c.Context(), absenceID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch follow-up questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetVisibleQuestions godoc
// @Summary Full visible question set for an absence
// @Description Scenario roots plus every follow-up unlocked by the recorded answers
// @Tags questions
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Param absenceType path string true "Absence type"
// @Param reasonCategory path string true "Reason category"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{absenceId}/visible/{absenceType}/{reasonCategory} [get]
func GetVisibleQuestions(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}
	absenceType, err := parsePathValue(c, "absenceType")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence type"})
	}
	reasonCategory, err := parsePathValue(c, "reasonCategory")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid reason category"})
	}

	list, err := questions.GetVisibleQuestions(c.Context(), absenceID, absenceType, reasonCategory)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch visible questions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetRiskAssessment godoc
// @Summary Current risk assessment for an absence
// @Tags questions
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{absenceId}/risk-assessment [get]
func GetRiskAssessment(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}

	assessment, err := questions.AnalyzeAnswersForRisk(c.Context(), absenceID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to assess risk"})
	}
	return c.JSON(fiber.Map{"success": true, "data": assessment})
}

// CheckMentalHealthFollowUp godoc
// @Summary Whether an absence needs a mental-health follow-up
// @Tags questions
// @Produce json
// @Param absenceId path string true "Absence ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{absenceId}/mental-health-check [get]
func CheckMentalHealthFollowUp(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("absenceId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid absence id"})
	}

	required, err := questions.CheckMentalHealthFollowUp(c.Context(), absenceID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to check mental health follow-up"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"requiresMentalHealthFollowUp": required}})
}

// ReloadQuestionCatalog godoc
// @Summary Reload the question catalog from the database
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/catalog/reload [post]
func ReloadQuestionCatalog(c *fiber.Ctx) error {
	catalog, err := questions.ReloadCatalog(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to reload catalog"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"questionCount": catalog.Size()}})
}

// ค่าพารามิเตอร์ใน path อาจถูก encode มา เช่น "Mental%20Health"
func parsePathValue(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if raw == "" {
		return "", fiber.NewError(http.StatusBadRequest, "missing "+name)
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return value, nil
}

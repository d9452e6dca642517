package controllers

import (
	"Backend-Firewatch-115/src/models"
	"Backend-Firewatch-115/src/services/absences"
	"Backend-Firewatch-115/src/services/workflows"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAbsence godoc
// @Summary Report a new absence
// @Description Create an absence record; a manager is auto-assigned when none is given
// @Tags absences
// @Accept json
// @Produce json
// @Param absence body models.CreateAbsenceRequest true "Absence to create"
// @Success 201 {object} models.Absence
// @Failure 400 {object} map[string]interface{}
// @Router /absences [post]
func CreateAbsence(c *fiber.Ctx) error {
	var req models.CreateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	absence, err := absences.CreateAbsence(c.Context(), &req)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(absence)
}

// GetAbsenceTypes godoc
// @Summary List active absence types
// @Tags absences
// @Produce json
// @Success 200 {array} models.AbsenceType
// @Router /absences/types [get]
func GetAbsenceTypes(c *fiber.Ctx) error {
	types, err := absences.GetAbsenceTypes(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absence types"})
	}
	return c.JSON(types)
}

// GetActiveAbsences godoc
// @Summary List absences that are still being worked
// @Tags absences
// @Produce json
// @Success 200 {array} models.Absence
// @Router /absences/active [get]
func GetActiveAbsences(c *fiber.Ctx) error {
	list, err := absences.GetActiveAbsences(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absences"})
	}
	return c.JSON(list)
}

// SearchAbsences godoc
// @Summary Search absences
// @Description Filter absences by employee, manager, status and reason category
// @Tags absences
// @Produce json
// @Param status query string false "Absence status"
// @Param reasonCategory query string false "Reason category"
// @Param employeeId query string false "Employee id"
// @Param managerId query string false "Assigned manager id"
// @Success 200 {object} models.PaginatedResponse
// @Router /absences [get]
func SearchAbsences(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	filters := bson.M{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if reason := c.Query("reasonCategory"); reason != "" {
		filters["reasonCategory"] = reason
	}
	if employee := c.Query("employeeId"); employee != "" {
		employeeID, err := primitive.ObjectIDFromHex(employee)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employeeId"})
		}
		filters["employeeId"] = employeeID
	}
	if manager := c.Query("managerId"); manager != "" {
		managerID, err := primitive.ObjectIDFromHex(manager)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid managerId"})
		}
		filters["assignedManagerId"] = managerID
	}

	list, total, _, err := absences.SearchAbsences(c.Context(), filters, params)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search absences"})
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetAbsenceStatistics godoc
// @Summary Absence counts by status and reason
// @Tags absences
// @Produce json
// @Success 200 {object} models.AbsenceStatistics
// @Router /absences/statistics [get]
func GetAbsenceStatistics(c *fiber.Ctx) error {
	stats, err := absences.GetAbsenceStatistics(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute statistics"})
	}
	return c.JSON(stats)
}

// GetAbsenceByID godoc
// @Summary Get an absence by id
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} models.Absence
// @Failure 404 {object} map[string]interface{}
// @Router /absences/{id} [get]
func GetAbsenceByID(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	absence, err := absences.GetAbsenceByID(c.Context(), id)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(absence)
}

// GetAbsenceWithDetails godoc
// @Summary Get an absence with employee, manager and type joined
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /absences/{id}/details [get]
func GetAbsenceWithDetails(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	details, err := absences.GetAbsenceWithDetails(c.Context(), id)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(details)
}

// GetAbsencesByEmployee godoc
// @Summary List absences of one employee
// @Tags absences
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} models.Absence
// @Router /absences/employee/{employeeId} [get]
func GetAbsencesByEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("employeeId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	list, err := absences.GetAbsencesByEmployee(c.Context(), employeeID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absences"})
	}
	return c.JSON(list)
}

// GetAbsencesByManager godoc
// @Summary List absences assigned to one manager
// @Tags absences
// @Produce json
// @Param managerId path string true "Manager ID"
// @Success 200 {array} models.Absence
// @Router /absences/manager/{managerId} [get]
func GetAbsencesByManager(c *fiber.Ctx) error {
	managerID, err := primitive.ObjectIDFromHex(c.Params("managerId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manager id"})
	}

	list, err := absences.GetAbsencesByManager(c.Context(), managerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absences"})
	}
	return c.JSON(list)
}

// UpdateAbsence godoc
// @Summary Update an absence
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Param absence body models.UpdateAbsenceRequest true "Fields to update"
// @Success 200 {object} models.Absence
// @Failure 404 {object} map[string]interface{}
// @Router /absences/{id} [put]
func UpdateAbsence(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req models.UpdateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	absence, err := absences.UpdateAbsence(c.Context(), id, &req)
	if err != nil {
		if err.Error() == "absence not found" {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(absence)
}

// UpdateAbsenceStatus godoc
// @Summary Change the status of an absence
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} models.Absence
// @Failure 404 {object} map[string]interface{}
// @Router /absences/{id}/status [patch]
func UpdateAbsenceStatus(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=Reported 'Under Review' Active 'Follow-up Required' Resolved Closed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	absence, err := absences.UpdateAbsenceStatus(c.Context(), id, req.Status)
	if err != nil {
		if err.Error() == "absence not found" {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(absence)
}

// SaveConversation godoc
// @Summary Record conversation entries for an absence
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /absences/{id}/conversation [post]
func SaveConversation(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Conversation []models.ConversationEntry `json:"conversation" validate:"required,min=1"`
		RecordedByID string                     `json:"recordedById" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recordedBy, err := primitive.ObjectIDFromHex(req.RecordedByID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recordedById"})
	}

	conversation, err := absences.SaveConversation(c.Context(), id, recordedBy, req.Conversation)
	if err != nil {
		if err.Error() == "absence not found" {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save conversation"})
	}
	return c.JSON(conversation)
}

// GetConversation godoc
// @Summary Get the conversation recorded for an absence
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} models.Conversation
// @Router /absences/{id}/conversation [get]
func GetConversation(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	conversation, err := absences.GetConversation(c.Context(), id)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch conversation"})
	}
	return c.JSON(conversation)
}

// GetWorkflowSteps godoc
// @Summary List workflow steps of an absence
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {array} models.WorkflowStep
// @Router /absences/{id}/workflow [get]
func GetWorkflowSteps(c *fiber.Ctx) error {
	id, err := parseAbsenceID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	steps, err := workflows.GetStepsByAbsence(c.Context(), id)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workflow steps"})
	}
	return c.JSON(steps)
}

// CompleteWorkflowStep godoc
// @Summary Mark a workflow step completed
// @Tags absences
// @Accept json
// @Produce json
// @Param stepId path string true "Workflow step ID"
// @Success 200 {object} models.WorkflowStep
// @Failure 404 {object} map[string]interface{}
// @Router /absences/workflow/{stepId}/complete [post]
func CompleteWorkflowStep(c *fiber.Ctx) error {
	stepID, err := primitive.ObjectIDFromHex(c.Params("stepId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid step id"})
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	step, err := workflows.CompleteStep(c.Context(), stepID, req.Notes)
	if err != nil {
		if err.Error() == "workflow step not found" {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete step"})
	}
	return c.JSON(step)
}

func parseAbsenceID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(http.StatusBadRequest, "invalid absence id")
	}
	return id, nil
}

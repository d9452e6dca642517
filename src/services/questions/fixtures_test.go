package questions

import (
	"time"

	"Backend-Firewatch-115/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixture catalog mirroring the seeded question set: Initial roots, a medical
// chain, a mental-health chain and an injury chain.
var (
	fixFeelingID  = primitive.NewObjectID()
	fixReasonID   = primitive.NewObjectID()
	fixSymptomsID = primitive.NewObjectID()
	fixFeverID    = primitive.NewObjectID()
	fixStressID   = primitive.NewObjectID()
	fixSelfHarmID = primitive.NewObjectID()
	fixSupportID  = primitive.NewObjectID()
	fixInjuryID   = primitive.NewObjectID()
	fixMobilityID = primitive.NewObjectID()
)

func fixtureTemplates() []models.QuestionTemplate {
	return []models.QuestionTemplate{
		{
			ID:           fixFeelingID,
			QuestionText: "How are you feeling today compared to when you reported the absence?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"Much Better", "Slightly Better", "About the Same", "Slightly Worse", "Much Worse"},
			Category:     models.CategoryInitial,
			Order:        1,
			RiskTag:      TagConditionTrend,
		},
		{
			ID:           fixReasonID,
			QuestionText: "Please describe the main reason for your absence.",
			QuestionType: models.QuestionText,
			Category:     models.CategoryInitial,
			Order:        2,
		},
		{
			ID:           fixSymptomsID,
			QuestionText: "Are you experiencing any respiratory symptoms?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"None", "Mild cough", "Shortness of breath", "Severe difficulty breathing"},
			Category:     models.CategoryMedical,
			Order:        3,
			RiskTag:      TagRespiratory,
		},
		{
			ID:                  fixFeverID,
			QuestionText:        "Have you had a fever in the last 24 hours?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &fixSymptomsID,
			DependsOnAnswer:     "Mild cough,Shortness of breath,Severe difficulty breathing",
			Category:            models.CategoryMedical,
			Order:               4,
		},
		{
			ID:           fixStressID,
			QuestionText: "How would you rate your current stress level?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"Low", "Moderate", "High", "Very High"},
			Category:     models.CategoryMentalHealth,
			Order:        5,
			RiskTag:      TagStressLevel,
		},
		{
			ID:                  fixSelfHarmID,
			QuestionText:        "Are you currently experiencing thoughts of self-harm?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &fixStressID,
			DependsOnAnswer:     "High,Very High",
			Category:            models.CategoryMentalHealth,
			Order:               6,
			RiskTag:             TagSelfHarm,
		},
		{
			ID:                  fixSupportID,
			QuestionText:        "Would you like us to arrange a confidential conversation with a peer support member?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &fixStressID,
			DependsOnAnswer:     "High,Very High",
			Category:            models.CategoryMentalHealth,
			Order:               7,
		},
		{
			ID:           fixInjuryID,
			QuestionText: "Did the injury occur while on duty?",
			QuestionType: models.QuestionBoolean,
			Category:     models.CategoryMedical,
			Order:        8,
		},
		{
			ID:                  fixMobilityID,
			QuestionText:        "Does the injury limit your mobility?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &fixInjuryID,
			Category:            models.CategoryMedical,
			Order:               9,
			RiskTag:             TagMobility,
		},
	}
}

func fixtureCatalog() *Catalog {
	return NewCatalog(fixtureTemplates())
}

// answered builds one history entry, stamping text and tag from the fixture
// catalog the way SaveAbsenceAnswers does.
func answered(c *Catalog, templateID primitive.ObjectID, answer string, at time.Time) models.AbsenceQuestion {
	template, _ := c.Get(templateID)
	return models.AbsenceQuestion{
		ID:                 primitive.NewObjectID(),
		QuestionTemplateID: templateID,
		QuestionText:       template.QuestionText,
		RiskTag:            template.RiskTag,
		Answer:             answer,
		AnsweredAt:         at,
	}
}

func templateIDs(templates []models.QuestionTemplate) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(templates))
	for _, q := range templates {
		ids = append(ids, q.ID)
	}
	return ids
}

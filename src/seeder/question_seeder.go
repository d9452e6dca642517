package seeder

import (
	"Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/models"
	"Backend-Firewatch-115/src/services/questions"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedAll เติมข้อมูลตั้งต้น (ประเภทการลา + แคตตาล็อกคำถาม) ถ้ายังไม่มี
func SeedAll() error {
	ctx := context.Background()

	if err := SeedAbsenceTypes(ctx); err != nil {
		return err
	}
	if err := SeedQuestionCatalog(ctx); err != nil {
		return err
	}

	// โหลดแคตตาล็อกใหม่หลัง seed
	if _, err := questions.ReloadCatalog(ctx); err != nil {
		return err
	}

	log.Println("Database seeding completed")
	return nil
}

// SeedAbsenceTypes inserts the default absence types. Skips when any exist.
func SeedAbsenceTypes(ctx context.Context) error {
	count, err := database.AbsenceTypeCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	threeDays := 3
	oneDay := 1
	types := []interface{}{
		models.AbsenceType{Name: "Sick Leave", RequiresNote: true, NoteRequirementDays: &threeDays, SpecificForms: []string{"Doctor Note"}, IsActive: true},
		models.AbsenceType{Name: "Personal Leave", RequiresNote: false, IsActive: true},
		models.AbsenceType{Name: "Family Emergency", RequiresNote: false, IsActive: true},
		models.AbsenceType{Name: "Mental Health Day", RequiresNote: false, IsActive: true},
		models.AbsenceType{Name: "Work-Related Injury", RequiresNote: true, NoteRequirementDays: &oneDay, SpecificForms: []string{"Incident Report", "WorkSafe Form"}, IsActive: true},
	}

	if _, err := database.AbsenceTypeCollection.InsertMany(ctx, types); err != nil {
		return err
	}
	log.Println("Absence types seeded")
	return nil
}

// SeedQuestionCatalog inserts the default question catalog. Skips when any
// templates exist. Dependent questions reference the pre-generated parent ids.
func SeedQuestionCatalog(ctx context.Context) error {
	count, err := database.QuestionTemplateCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	feelingID := primitive.NewObjectID()
	reasonID := primitive.NewObjectID()
	symptomsID := primitive.NewObjectID()
	feverID := primitive.NewObjectID()
	stressID := primitive.NewObjectID()
	selfHarmID := primitive.NewObjectID()
	supportID := primitive.NewObjectID()
	injuryID := primitive.NewObjectID()
	mobilityID := primitive.NewObjectID()

	templates := []models.QuestionTemplate{
		// คำถามเริ่มต้น ถามทุกเคส
		{
			ID:           feelingID,
			QuestionText: "How are you feeling today compared to when you reported the absence?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"Much Better", "Slightly Better", "About the Same", "Slightly Worse", "Much Worse"},
			IsRequired:   true,
			Category:     models.CategoryInitial,
			Order:        1,
			RiskTag:      questions.TagConditionTrend,
			CreatedAt:    now,
		},
		{
			ID:           reasonID,
			QuestionText: "Please describe the main reason for your absence.",
			QuestionType: models.QuestionText,
			IsRequired:   true,
			Category:     models.CategoryInitial,
			Order:        2,
			CreatedAt:    now,
		},
		// สายการแพทย์
		{
			ID:           symptomsID,
			QuestionText: "Are you experiencing any respiratory symptoms?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"None", "Mild cough", "Shortness of breath", "Severe difficulty breathing"},
			IsRequired:   true,
			Category:     models.CategoryMedical,
			Order:        3,
			RiskTag:      questions.TagRespiratory,
			CreatedAt:    now,
		},
		{
			ID:                  feverID,
			QuestionText:        "Have you had a fever in the last 24 hours?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &symptomsID,
			DependsOnAnswer:     "Mild cough,Shortness of breath,Severe difficulty breathing",
			IsRequired:          false,
			Category:            models.CategoryMedical,
			Order:               4,
			CreatedAt:           now,
		},
		// สายสุขภาพจิต
		{
			ID:           stressID,
			QuestionText: "How would you rate your current stress level?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"Low", "Moderate", "High", "Very High"},
			IsRequired:   true,
			Category:     models.CategoryMentalHealth,
			Order:        5,
			RiskTag:      questions.TagStressLevel,
			CreatedAt:    now,
		},
		{
			ID:                  selfHarmID,
			QuestionText:        "Are you currently experiencing thoughts of self-harm?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &stressID,
			DependsOnAnswer:     "High,Very High",
			IsRequired:          true,
			Category:            models.CategoryMentalHealth,
			Order:               6,
			RiskTag:             questions.TagSelfHarm,
			CreatedAt:           now,
		},
		{
			ID:                  supportID,
			QuestionText:        "Would you like us to arrange a confidential conversation with a peer support member?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &stressID,
			DependsOnAnswer:     "High,Very High",
			IsRequired:          false,
			Category:            models.CategoryMentalHealth,
			Order:               7,
			CreatedAt:           now,
		},
		// สายบาดเจ็บจากงาน
		{
			ID:           injuryID,
			QuestionText: "Did the injury occur while on duty?",
			QuestionType: models.QuestionBoolean,
			IsRequired:   true,
			Category:     models.CategoryMedical,
			Order:        8,
			CreatedAt:    now,
		},
		{
			ID:                  mobilityID,
			QuestionText:        "Does the injury limit your mobility?",
			QuestionType:        models.QuestionBoolean,
			DependsOnQuestionID: &injuryID,
			IsRequired:          false,
			Category:            models.CategoryMedical,
			Order:               9,
			RiskTag:             questions.TagMobility,
			CreatedAt:           now,
		},
		// Return-to-Work
		{
			QuestionText: "Have you been cleared by a medical professional to return to duty?",
			QuestionType: models.QuestionBoolean,
			IsRequired:   true,
			Category:     models.CategoryReturnToWork,
			Order:        10,
			CreatedAt:    now,
		},
		{
			QuestionText: "Do you require any modified duties on your return?",
			QuestionType: models.QuestionSelect,
			Options:      []string{"None", "Light duties", "No ladder work", "Station duties only"},
			IsRequired:   true,
			Category:     models.CategoryReturnToWork,
			Order:        11,
			CreatedAt:    now,
		},
		// Follow-up
		{
			QuestionText: "Is there anything else your supervisor should know?",
			QuestionType: models.QuestionText,
			IsRequired:   false,
			Category:     models.CategoryFollowUp,
			Order:        12,
			CreatedAt:    now,
		},
	}

	docs := make([]interface{}, 0, len(templates))
	for i := range templates {
		if templates[i].ID.IsZero() {
			templates[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, templates[i])
	}

	if _, err := database.QuestionTemplateCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Question catalog seeded (%d templates)", len(docs))
	return nil
}

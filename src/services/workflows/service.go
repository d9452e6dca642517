package workflows

import (
	"context"
	"errors"
	"log"
	"time"

	DB "Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/jobs"
	"Backend-Firewatch-115/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateInitialSteps opens the standard workflow for a fresh absence: the
// initial report review and, once a manager is assigned, a follow-up call.
// Each step gets a reminder job scheduled at its due date.
func CreateInitialSteps(ctx context.Context, absence *models.Absence) error {
	now := time.Now()

	steps := []models.WorkflowStep{
		{
			ID:           primitive.NewObjectID(),
			AbsenceID:    absence.ID,
			StepType:     models.StepInitialReport,
			AssignedToID: absence.ReportingOfficerID,
			DueDate:      now.Add(24 * time.Hour),
			Status:       models.StepPending,
			Priority:     priorityFor(absence.SeverityLevel),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if absence.AssignedManagerID != nil {
		steps = append(steps, models.WorkflowStep{
			ID:           primitive.NewObjectID(),
			AbsenceID:    absence.ID,
			StepType:     models.StepFollowUpCall,
			AssignedToID: *absence.AssignedManagerID,
			DueDate:      now.Add(48 * time.Hour),
			Status:       models.StepPending,
			Priority:     priorityFor(absence.SeverityLevel),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	docs := make([]interface{}, len(steps))
	for i, s := range steps {
		docs[i] = s
	}

	if _, err := DB.WorkflowStepCollection.InsertMany(ctx, docs); err != nil {
		return err
	}

	for _, step := range steps {
		scheduleReminder(step)
	}

	return nil
}

// GetStepsByAbsence ดึง workflow steps ของ absence เรียงตามกำหนดส่ง
func GetStepsByAbsence(ctx context.Context, absenceID primitive.ObjectID) ([]models.WorkflowStep, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := DB.WorkflowStepCollection.Find(ctx, bson.M{"absenceId": absenceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var steps []models.WorkflowStep
	if err = cursor.All(ctx, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// CompleteStep marks a step completed and stores the outcome notes.
func CompleteStep(ctx context.Context, stepID primitive.ObjectID, notes string) (*models.WorkflowStep, error) {
	now := time.Now()

	result := DB.WorkflowStepCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": stepID},
		bson.M{"$set": bson.M{
			"status":      models.StepCompleted,
			"completedAt": now,
			"notes":       notes,
			"updatedAt":   now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var step models.WorkflowStep
	if err := result.Decode(&step); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("workflow step not found")
		}
		return nil, err
	}
	return &step, nil
}

// scheduleReminder enqueues the due-date reminder for a step. Best-effort:
// without Redis the step still exists, it just won't nag anyone.
func scheduleReminder(step models.WorkflowStep) {
	if DB.AsynqClient == nil {
		return
	}

	task, err := jobs.NewFollowUpReminderTask(step.ID.Hex(), step.AbsenceID.Hex())
	if err != nil {
		log.Println("reminder: create task failed:", err)
		return
	}

	taskID := "step-reminder-" + step.ID.Hex()
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(step.DueDate), asynq.TaskID(taskID)); err != nil {
		log.Println("reminder: enqueue failed:", err)
	}
}

func priorityFor(severityLevel string) string {
	switch severityLevel {
	case "Critical":
		return "Critical"
	case "Severe":
		return "High"
	case "Moderate":
		return "Medium"
	default:
		return "Low"
	}
}

package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/models"
	"Backend-Firewatch-115/src/services/notify"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterHandlers binds all task handlers onto the mux. The SMTP sender is
// built once here so a misconfigured environment fails at worker start, not
// per task.
func RegisterHandlers(mux *asynq.ServeMux) error {
	sender, err := notify.NewSMTPSenderFromEnv()
	if err != nil {
		return err
	}

	mux.HandleFunc(TypeRiskEscalation, HandleRiskEscalationTask(sender))
	mux.HandleFunc(TypeFollowUpReminder, HandleFollowUpReminderTask(sender))
	return nil
}

// StartWorker runs the Asynq worker in the background. Skipped entirely when
// Redis or SMTP is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("Redis not available, background worker disabled")
		return
	}

	mux := asynq.NewServeMux()
	if err := RegisterHandlers(mux); err != nil {
		log.Println("worker disabled:", err)
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("asynq worker stopped:", err)
		}
	}()

	log.Println("Background worker started")
}

// HandleRiskEscalationTask emails the manager responsible for an absence
// whose answers scored Critical.
func HandleRiskEscalationTask(sender notify.MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RiskEscalationPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("escalation payload decode error:", err)
			return err
		}

		absenceID, err := primitive.ObjectIDFromHex(payload.AbsenceID)
		if err != nil {
			return err
		}

		absences := database.GetCollection(database.DatabaseName, "absences")
		var absence models.Absence
		if err := absences.FindOne(ctx, bson.M{"_id": absenceID}).Decode(&absence); err != nil {
			if err == mongo.ErrNoDocuments {
				// Absence deleted in the meantime. Nothing to escalate.
				log.Println("escalation: absence not found, skipping:", payload.AbsenceID)
				return nil
			}
			return err
		}

		users := database.GetCollection(database.DatabaseName, "users")

		var employee models.User
		employeeName := payload.AbsenceID
		if err := users.FindOne(ctx, bson.M{"_id": absence.EmployeeID}).Decode(&employee); err == nil {
			employeeName = employee.FirstName + " " + employee.LastName
		}

		// Escalate to the assigned manager, falling back to the reporting officer.
		recipientID := absence.ReportingOfficerID
		if absence.AssignedManagerID != nil {
			recipientID = *absence.AssignedManagerID
		}

		var recipient models.User
		if err := users.FindOne(ctx, bson.M{"_id": recipientID}).Decode(&recipient); err != nil {
			log.Println("escalation: no recipient for absence:", payload.AbsenceID)
			return err
		}

		subject, html := notify.BuildRiskEscalationEmail(employeeName, payload.AbsenceID, payload.RiskLevel, payload.Flags)
		if err := sender.Send(recipient.Email, subject, html); err != nil {
			return err
		}

		log.Println("escalation mail sent for absence:", payload.AbsenceID)
		return nil
	}
}

// HandleFollowUpReminderTask reminds the assignee of a workflow step that has
// reached its due date. Completed or deleted steps are skipped silently.
func HandleFollowUpReminderTask(sender notify.MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload FollowUpReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		stepID, err := primitive.ObjectIDFromHex(payload.StepID)
		if err != nil {
			return err
		}

		steps := database.GetCollection(database.DatabaseName, "workflowSteps")
		var step models.WorkflowStep
		if err := steps.FindOne(ctx, bson.M{"_id": stepID}).Decode(&step); err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("reminder: step not found, skipping:", payload.StepID)
				return nil
			}
			return err
		}
		if step.Status == models.StepCompleted {
			return nil
		}

		users := database.GetCollection(database.DatabaseName, "users")
		var assignee models.User
		if err := users.FindOne(ctx, bson.M{"_id": step.AssignedToID}).Decode(&assignee); err != nil {
			return err
		}

		absences := database.GetCollection(database.DatabaseName, "absences")
		var absence models.Absence
		employeeName := payload.AbsenceID
		if err := absences.FindOne(ctx, bson.M{"_id": step.AbsenceID}).Decode(&absence); err == nil {
			var employee models.User
			if err := users.FindOne(ctx, bson.M{"_id": absence.EmployeeID}).Decode(&employee); err == nil {
				employeeName = employee.FirstName + " " + employee.LastName
			}
		}

		subject, html := notify.BuildFollowUpReminderEmail(step.StepType, employeeName, payload.AbsenceID)
		return sender.Send(assignee.Email, subject, html)
	}
}

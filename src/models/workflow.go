package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workflow step types
const (
	StepInitialReport     = "Initial Report"
	StepManagerAssignment = "Manager Assignment"
	StepFollowUpCall      = "Follow-up Call"
	StepDocumentReview    = "Document Review"
	StepReturnAssessment  = "Return Assessment"
)

// Workflow step statuses
const (
	StepPending    = "Pending"
	StepInProgress = "In Progress"
	StepCompleted  = "Completed"
	StepOverdue    = "Overdue"
)

// WorkflowStep คืองานติดตามหนึ่งขั้นของ absence case
type WorkflowStep struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AbsenceID    primitive.ObjectID `bson:"absenceId" json:"absenceId"`
	StepType     string             `bson:"stepType" json:"stepType"`
	AssignedToID primitive.ObjectID `bson:"assignedToId" json:"assignedToId"`
	DueDate      time.Time          `bson:"dueDate" json:"dueDate"`
	CompletedAt  *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Priority     string             `bson:"priority" json:"priority"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types
const (
	QuestionText        = "text"
	QuestionSelect      = "select"
	QuestionMultiSelect = "multi-select"
	QuestionBoolean     = "boolean"
)

// Question categories
const (
	CategoryInitial      = "Initial"
	CategoryFollowUp     = "Follow-up"
	CategoryMedical      = "Medical"
	CategoryMentalHealth = "Mental Health"
	CategoryReturnToWork = "Return-to-Work"
)

// QuestionTemplate คือคำถามในแคตตาล็อก โหลดครั้งเดียวตอน start และไม่แก้ไขระหว่างรัน
type QuestionTemplate struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionText string             `bson:"questionText" json:"questionText"`
	QuestionType string             `bson:"questionType" json:"questionType"`
	// Options are present only for select / multi-select questions.
	Options []string `bson:"options,omitempty" json:"options,omitempty"`
	// DependsOnQuestionID gates this question behind a parent's answer.
	DependsOnQuestionID *primitive.ObjectID `bson:"dependsOnQuestionId,omitempty" json:"dependsOnQuestionId,omitempty"`
	// DependsOnAnswer is the comma-joined trigger values. Empty means any
	// answer to the parent unlocks this question.
	DependsOnAnswer string `bson:"dependsOnAnswer,omitempty" json:"dependsOnAnswer,omitempty"`
	IsRequired      bool   `bson:"isRequired" json:"isRequired"`
	Category        string `bson:"category" json:"category"`
	// Order is the catalog order, ascending. Stable across reloads.
	Order int `bson:"order" json:"order"`
	// RiskTag is the authoring-time semantic tag driving the risk scorer
	// (e.g. "self-harm"), so scoring survives prompt edits.
	RiskTag   string    `bson:"riskTag,omitempty" json:"riskTag,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// AbsenceQuestion คือคำตอบหนึ่งรายการของ absence case — append-only, ไม่แก้ไขย้อนหลัง
// Question text and risk tag are stamped from the catalog at save time so the
// engine never has to re-derive a template id from prose.
type AbsenceQuestion struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AbsenceID          primitive.ObjectID `bson:"absenceId" json:"absenceId"`
	QuestionTemplateID primitive.ObjectID `bson:"questionTemplateId" json:"questionTemplateId"`
	QuestionText       string             `bson:"questionText" json:"questionText"`
	RiskTag            string             `bson:"riskTag,omitempty" json:"riskTag,omitempty"`
	// Answer is the raw string value; multi-select answers are comma-joined.
	Answer       string             `bson:"answer" json:"answer"`
	AnsweredByID primitive.ObjectID `bson:"answeredById" json:"answeredById"`
	AnsweredAt   time.Time          `bson:"answeredAt" json:"answeredAt"`
}

// Risk levels, ordered. The scorer never goes below Low or above Critical.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// RiskLevels is the severity ladder indexed by rule floor (0=Low .. 3=Critical).
var RiskLevels = []string{RiskLow, RiskModerate, RiskHigh, RiskCritical}

// RiskAssessment is derived from the answer history of a case. Never persisted.
type RiskAssessment struct {
	RiskLevel                  string   `json:"riskLevel"`
	Flags                      []string `json:"flags"`
	RequiresImmediateAttention bool     `json:"requiresImmediateAttention"`
	RecommendedActions         []string `json:"recommendedActions"`
}

// AnswerInput รับคำตอบหนึ่งข้อจาก client
type AnswerInput struct {
	QuestionTemplateID string `json:"questionTemplateId" validate:"required"`
	Answer             string `json:"answer" validate:"required"`
}

// SaveAnswersRequest รับชุดคำตอบของ absence case
type SaveAnswersRequest struct {
	Answers      []AnswerInput `json:"answers" validate:"required,min=1,dive"`
	AnsweredByID string        `json:"answeredById" validate:"required"`
}

// QuestionFlowNode is a catalog question together with the follow-up
// questions each of its answer options would unlock.
type QuestionFlowNode struct {
	QuestionTemplate   `bson:",inline"`
	DependentQuestions []DependentGroup `json:"dependentQuestions"`
}

// DependentGroup คือกลุ่มคำถามลูกที่ปลดล็อกด้วยคำตอบเดียวกัน
type DependentGroup struct {
	TriggerAnswer string             `json:"triggerAnswer"`
	Questions     []QuestionTemplate `json:"questions"`
}

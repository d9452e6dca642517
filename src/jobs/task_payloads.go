package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRiskEscalation = "risk:escalate"

type RiskEscalationPayload struct {
	AbsenceID string   `json:"absence_id"`
	RiskLevel string   `json:"risk_level"`
	Flags     []string `json:"flags"`
}

func NewRiskEscalationTask(absenceID, riskLevel string, flags []string) (*asynq.Task, error) {
	payload, err := json.Marshal(RiskEscalationPayload{
		AbsenceID: absenceID,
		RiskLevel: riskLevel,
		Flags:     flags,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRiskEscalation, payload), nil
}

const TypeFollowUpReminder = "workflow:follow_up_reminder"

type FollowUpReminderPayload struct {
	StepID    string `json:"step_id"`
	AbsenceID string `json:"absence_id"`
}

func NewFollowUpReminderTask(stepID, absenceID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FollowUpReminderPayload{StepID: stepID, AbsenceID: absenceID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFollowUpReminder, payload), nil
}

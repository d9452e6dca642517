package questions

import (
	"testing"
	"time"

	"Backend-Firewatch-115/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEscalateIfCritical(t *testing.T) {
	c := fixtureCatalog()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	var enqueued []string
	orig := enqueueEscalation
	enqueueEscalation = func(absenceID primitive.ObjectID, assessment *models.RiskAssessment) {
		enqueued = append(enqueued, absenceID.Hex())
	}
	defer func() { enqueueEscalation = orig }()

	absenceID := primitive.NewObjectID()

	t.Run("CriticalAssessmentEnqueues", func(t *testing.T) {
		enqueued = nil
		assessment := AnalyzeRisk([]models.AbsenceQuestion{
			answered(c, fixSelfHarmID, "true", base),
		})

		EscalateIfCritical(absenceID, &assessment)

		assert.Equal(t, []string{absenceID.Hex()}, enqueued)
	})

	t.Run("NonCriticalDoesNotEnqueue", func(t *testing.T) {
		enqueued = nil
		for _, history := range [][]models.AbsenceQuestion{
			nil,
			{answered(c, fixStressID, "Very High", base)},
			{answered(c, fixSymptomsID, "Mild cough", base)},
		} {
			assessment := AnalyzeRisk(history)
			EscalateIfCritical(absenceID, &assessment)
		}

		assert.Empty(t, enqueued)
	})

	t.Run("NilAssessmentDoesNotEnqueue", func(t *testing.T) {
		enqueued = nil
		EscalateIfCritical(absenceID, nil)
		assert.Empty(t, enqueued)
	})
}

func TestEscalationTaskID(t *testing.T) {
	absenceID := primitive.NewObjectID()

	// The id must be stable per absence so asynq dedups a repeat enqueue.
	assert.Equal(t, escalationTaskID(absenceID), escalationTaskID(absenceID))
	assert.Equal(t, "risk-escalate-"+absenceID.Hex(), escalationTaskID(absenceID))
	assert.NotEqual(t, escalationTaskID(absenceID), escalationTaskID(primitive.NewObjectID()))
}

package questions

import (
	"testing"
	"time"

	"Backend-Firewatch-115/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVisibleQuestions(t *testing.T) {
	c := fixtureCatalog()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("NoAnswersShowsScenarioRoots", func(t *testing.T) {
		visible := VisibleQuestions(c, "Sick Leave", models.ReasonMentalHealth, nil)

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID, fixStressID}, templateIDs(visible))
	})

	t.Run("AnswerUnlocksFollowUps", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixStressID, "Very High", base),
		}

		visible := VisibleQuestions(c, "Sick Leave", models.ReasonMentalHealth, history)

		assert.Equal(t, []primitive.ObjectID{
			fixFeelingID, fixReasonID, fixStressID,
			fixSelfHarmID, fixSupportID,
		}, templateIDs(visible))
	})

	t.Run("DuplicateUnlocksAppearOnce", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixStressID, "High", base),
			answered(c, fixStressID, "Very High", base.Add(time.Hour)),
		}

		visible := VisibleQuestions(c, "Sick Leave", models.ReasonMentalHealth, history)

		counts := make(map[primitive.ObjectID]int)
		for _, q := range visible {
			counts[q.ID]++
		}
		for id, n := range counts {
			assert.Equalf(t, 1, n, "question %s appeared %d times", id.Hex(), n)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Mild cough", base),
			answered(c, fixInjuryID, "true", base.Add(time.Minute)),
		}

		first := VisibleQuestions(c, "Sick Leave", models.ReasonInjury, history)
		second := VisibleQuestions(c, "Sick Leave", models.ReasonInjury, history)

		assert.Equal(t, templateIDs(first), templateIDs(second))
	})

	t.Run("UnlockOrderFollowsAnswerTime", func(t *testing.T) {
		// Mobility was answered first, so its unlock precedes the fever one
		// even though the slice is given in reverse.
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Shortness of breath", base.Add(time.Hour)),
			answered(c, fixInjuryID, "true", base),
		}

		visible := VisibleQuestions(c, "Sick Leave", models.ReasonInjury, history)

		assert.Equal(t, []primitive.ObjectID{
			fixFeelingID, fixReasonID, fixSymptomsID, fixInjuryID,
			fixMobilityID, fixFeverID,
		}, templateIDs(visible))
	})

	t.Run("UnknownTemplateAnswersSkipped", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			{
				QuestionTemplateID: primitive.NewObjectID(),
				QuestionText:       "A question that left the catalog",
				Answer:             "true",
				AnsweredAt:         base,
			},
			answered(c, fixStressID, "High", base.Add(time.Minute)),
		}

		visible := VisibleQuestions(c, "Sick Leave", models.ReasonMentalHealth, history)

		assert.Equal(t, []primitive.ObjectID{
			fixFeelingID, fixReasonID, fixStressID,
			fixSelfHarmID, fixSupportID,
		}, templateIDs(visible))
	})
}

func TestFollowUpQuestions(t *testing.T) {
	c := fixtureCatalog()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("OnlyUnlockedDependents", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixFeelingID, "Much Better", base),
			answered(c, fixStressID, "Very High", base.Add(time.Minute)),
		}

		followUps := FollowUpQuestions(c, history)

		assert.Equal(t, []primitive.ObjectID{fixSelfHarmID, fixSupportID}, templateIDs(followUps))
		for _, q := range followUps {
			assert.NotNil(t, q.DependsOnQuestionID)
		}
	})

	t.Run("NoTriggeringAnswers", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixStressID, "Low", base),
			answered(c, fixSymptomsID, "None", base.Add(time.Minute)),
		}

		assert.Empty(t, FollowUpQuestions(c, history))
	})

	t.Run("DedupAcrossRepeatedAnswers", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixInjuryID, "false", base),
			answered(c, fixInjuryID, "true", base.Add(time.Minute)),
		}

		followUps := FollowUpQuestions(c, history)
		assert.Equal(t, []primitive.ObjectID{fixMobilityID}, templateIDs(followUps))
	})
}

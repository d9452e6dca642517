package questions

import (
	"testing"
	"time"

	"Backend-Firewatch-115/src/models"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRisk(t *testing.T) {
	c := fixtureCatalog()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("EmptyHistoryIsLow", func(t *testing.T) {
		assessment := AnalyzeRisk(nil)

		assert.Equal(t, models.RiskLow, assessment.RiskLevel)
		assert.Empty(t, assessment.Flags)
		assert.False(t, assessment.RequiresImmediateAttention)
		assert.Empty(t, assessment.RecommendedActions)
	})

	t.Run("SelfHarmTrueIsCritical", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSelfHarmID, "true", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskCritical, assessment.RiskLevel)
		assert.True(t, assessment.RequiresImmediateAttention)
		assert.Contains(t, assessment.Flags, "Self-harm risk identified")
		assert.Equal(t, []string{
			"Immediate supervisor contact required",
			"Emergency support services referral",
			"Safety plan development",
		}, assessment.RecommendedActions)
	})

	t.Run("SelfHarmFalseStaysLow", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSelfHarmID, "false", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskLow, assessment.RiskLevel)
		assert.Empty(t, assessment.Flags)
	})

	t.Run("HighStressIsHigh", func(t *testing.T) {
		for _, answer := range []string{"High", "Very High"} {
			history := []models.AbsenceQuestion{
				answered(c, fixStressID, answer, base),
			}

			assessment := AnalyzeRisk(history)

			assert.Equal(t, models.RiskHigh, assessment.RiskLevel)
			assert.Contains(t, assessment.Flags, "High stress level reported")
			assert.False(t, assessment.RequiresImmediateAttention)
		}
	})

	t.Run("RespiratorySymptomsIsModerate", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Mild cough", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskModerate, assessment.RiskLevel)
		assert.Contains(t, assessment.Flags, "Respiratory symptoms present")
		assert.Contains(t, assessment.RecommendedActions, "Medical assessment recommended")
		assert.Contains(t, assessment.RecommendedActions, "Consider communicable disease protocols")
	})

	t.Run("RespiratoryNoneDoesNotFlag", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "None", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskLow, assessment.RiskLevel)
		assert.Empty(t, assessment.Flags)
	})

	t.Run("MobilityTrueIsModerate", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixMobilityID, "true", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskModerate, assessment.RiskLevel)
		assert.Contains(t, assessment.Flags, "Mobility affected by injury")
		assert.Contains(t, assessment.RecommendedActions, "Occupational health assessment")
		assert.Contains(t, assessment.RecommendedActions, "Modified duty consideration")
	})

	t.Run("WorseningConditionIsHigh", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixFeelingID, "Much Worse", base),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskHigh, assessment.RiskLevel)
		assert.Contains(t, assessment.Flags, "Condition worsening")
	})

	t.Run("LevelIsMaxOfFloors", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Shortness of breath", base),
			answered(c, fixStressID, "Very High", base.Add(time.Minute)),
			answered(c, fixSelfHarmID, "true", base.Add(2*time.Minute)),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskCritical, assessment.RiskLevel)
		assert.Equal(t, []string{
			"Respiratory symptoms present",
			"High stress level reported",
			"Self-harm risk identified",
		}, assessment.Flags)
	})

	t.Run("AppendingAnswersNeverLowersLevel", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixStressID, "Very High", base),
		}
		assert.Equal(t, models.RiskHigh, AnalyzeRisk(history).RiskLevel)

		// A calm later answer must not pull the level back down.
		history = append(history, answered(c, fixSymptomsID, "None", base.Add(time.Hour)))
		assert.Equal(t, models.RiskHigh, AnalyzeRisk(history).RiskLevel)
	})

	t.Run("RuleFiringTwiceFlagsTwice", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Mild cough", base),
			answered(c, fixSymptomsID, "Severe difficulty breathing", base.Add(time.Hour)),
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, []string{
			"Respiratory symptoms present",
			"Respiratory symptoms present",
		}, assessment.Flags)
		// The action rules only check presence, so the actions stay single.
		assert.Equal(t, []string{
			"Regular follow-up calls",
			"Peer support connection",
			"Monitor for changes",
			"Medical assessment recommended",
			"Consider communicable disease protocols",
		}, assessment.RecommendedActions)
	})

	t.Run("KeywordFallbackForUntaggedAnswers", func(t *testing.T) {
		// Answers saved before tagging existed carry only question text.
		history := []models.AbsenceQuestion{
			{
				QuestionText: "Have you had thoughts of self-harm this week?",
				Answer:       "true",
				AnsweredAt:   base,
			},
		}

		assessment := AnalyzeRisk(history)

		assert.Equal(t, models.RiskCritical, assessment.RiskLevel)
		assert.Contains(t, assessment.Flags, "Self-harm risk identified")
	})

	t.Run("TagSuppressesKeywordMatch", func(t *testing.T) {
		// A tagged answer is scored by its tag only, even when the prompt
		// text happens to contain another rule's keyword.
		history := []models.AbsenceQuestion{
			{
				QuestionText: "Given your stress level, does the injury limit your mobility?",
				RiskTag:      TagMobility,
				Answer:       "High",
				AnsweredAt:   base,
			},
		}

		assessment := AnalyzeRisk(history)

		// The mobility rule wants "true", so nothing fires.
		assert.Equal(t, models.RiskLow, assessment.RiskLevel)
		assert.Empty(t, assessment.Flags)
	})
}

func TestRequiresMentalHealthFollowUp(t *testing.T) {
	c := fixtureCatalog()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("StressQuestionTriggers", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixStressID, "Low", base),
		}
		assert.True(t, RequiresMentalHealthFollowUp(history))
	})

	t.Run("SelfHarmQuestionTriggers", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSelfHarmID, "false", base),
		}
		assert.True(t, RequiresMentalHealthFollowUp(history))
	})

	t.Run("MedicalOnlyHistoryDoesNot", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			answered(c, fixSymptomsID, "Mild cough", base),
			answered(c, fixInjuryID, "true", base.Add(time.Minute)),
		}
		assert.False(t, RequiresMentalHealthFollowUp(history))
	})

	t.Run("MatchIsCaseSensitive", func(t *testing.T) {
		history := []models.AbsenceQuestion{
			{QuestionText: "Any mental health concerns?", Answer: "no", AnsweredAt: base},
		}
		assert.False(t, RequiresMentalHealthFollowUp(history))
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		assert.False(t, RequiresMentalHealthFollowUp(nil))
	})
}

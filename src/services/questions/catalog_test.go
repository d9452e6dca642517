package questions

import (
	"testing"

	"Backend-Firewatch-115/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewCatalogOrdering(t *testing.T) {
	// Feed templates in reverse to make sure the catalog re-sorts them.
	templates := fixtureTemplates()
	for i, j := 0, len(templates)-1; i < j; i, j = i+1, j-1 {
		templates[i], templates[j] = templates[j], templates[i]
	}

	c := NewCatalog(templates)

	all := c.All()
	assert.Equal(t, len(templates), c.Size())
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Order, all[i].Order)
	}
}

func TestScenarioQuestions(t *testing.T) {
	c := fixtureCatalog()

	t.Run("MentalHealthReason", func(t *testing.T) {
		scenario := c.ScenarioQuestions("Sick Leave", models.ReasonMentalHealth)

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID, fixStressID}, templateIDs(scenario))
		for _, q := range scenario {
			assert.Nil(t, q.DependsOnQuestionID)
		}
	})

	t.Run("InjuryReason", func(t *testing.T) {
		scenario := c.ScenarioQuestions("Sick Leave", models.ReasonInjury)

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID, fixSymptomsID, fixInjuryID}, templateIDs(scenario))
	})

	t.Run("ExtendedMedical", func(t *testing.T) {
		scenario := c.ScenarioQuestions(models.AbsenceTypeExtended, "Medical")

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID, fixSymptomsID, fixInjuryID}, templateIDs(scenario))
	})

	t.Run("DefaultScenarioIsInitialOnly", func(t *testing.T) {
		scenario := c.ScenarioQuestions("Personal Leave", models.ReasonFamily)

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID}, templateIDs(scenario))
	})

	t.Run("MentalHealthWinsOverExtended", func(t *testing.T) {
		// Reason takes precedence over the absence type rule.
		scenario := c.ScenarioQuestions(models.AbsenceTypeExtended, models.ReasonMentalHealth)

		assert.Equal(t, []primitive.ObjectID{fixFeelingID, fixReasonID, fixStressID}, templateIDs(scenario))
	})
}

func TestChildrenOf(t *testing.T) {
	c := fixtureCatalog()

	t.Run("TriggerMatch", func(t *testing.T) {
		unlocked := c.ChildrenOf(fixStressID, "Very High")

		assert.Equal(t, []primitive.ObjectID{fixSelfHarmID, fixSupportID}, templateIDs(unlocked))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, c.ChildrenOf(fixStressID, "Low"))
	})

	t.Run("EmptyTriggerUnlocksOnAnyAnswer", func(t *testing.T) {
		unlocked := c.ChildrenOf(fixInjuryID, "false")

		assert.Equal(t, []primitive.ObjectID{fixMobilityID}, templateIDs(unlocked))
	})

	t.Run("SubstringContainmentMatch", func(t *testing.T) {
		// Trigger membership is substring containment, so "High" also
		// matches inside "Very High".
		unlocked := c.ChildrenOf(fixStressID, "High")

		assert.Len(t, unlocked, 2)
	})

	t.Run("UnknownParent", func(t *testing.T) {
		assert.Empty(t, c.ChildrenOf(primitive.NewObjectID(), "true"))
	})
}

func TestRootQuestionsFor(t *testing.T) {
	c := fixtureCatalog()

	roots := c.RootQuestionsFor(models.CategoryMedical)
	assert.Equal(t, []primitive.ObjectID{fixSymptomsID, fixInjuryID}, templateIDs(roots))

	// Dependent questions never count as roots.
	for _, q := range roots {
		assert.Nil(t, q.DependsOnQuestionID)
	}
}

func TestTriggerMatches(t *testing.T) {
	assert.True(t, triggerMatches("", "anything"))
	assert.True(t, triggerMatches("High,Very High", "High"))
	assert.True(t, triggerMatches("High,Very High", "Very High"))
	assert.False(t, triggerMatches("High,Very High", "Low"))
	assert.False(t, triggerMatches("true", "false"))
}

package questions

import (
	"sort"
	"strings"

	"Backend-Firewatch-115/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog holds the question templates in memory. It is built once from the
// questionTemplates collection and never mutated afterwards, so lookups need
// no locking.
type Catalog struct {
	ordered  []models.QuestionTemplate
	byID     map[primitive.ObjectID]models.QuestionTemplate
	children map[primitive.ObjectID][]models.QuestionTemplate
}

// NewCatalog builds a catalog from templates. Input order does not matter:
// templates are sorted by their catalog order field.
func NewCatalog(templates []models.QuestionTemplate) *Catalog {
	ordered := make([]models.QuestionTemplate, len(templates))
	copy(ordered, templates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	c := &Catalog{
		ordered:  ordered,
		byID:     make(map[primitive.ObjectID]models.QuestionTemplate, len(ordered)),
		children: make(map[primitive.ObjectID][]models.QuestionTemplate),
	}

	for _, q := range ordered {
		c.byID[q.ID] = q
	}
	// A dangling dependsOn reference simply produces no children; the caller
	// logs it as a data integrity issue when it notices.
	for _, q := range ordered {
		if q.DependsOnQuestionID != nil {
			parent := *q.DependsOnQuestionID
			c.children[parent] = append(c.children[parent], q)
		}
	}

	return c
}

// Size returns the number of templates in the catalog.
func (c *Catalog) Size() int {
	return len(c.ordered)
}

// Get looks up a template by id.
func (c *Catalog) Get(id primitive.ObjectID) (models.QuestionTemplate, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// All returns every template in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []models.QuestionTemplate {
	return c.ordered
}

// RootQuestionsFor returns the parentless questions of a category in catalog order.
func (c *Catalog) RootQuestionsFor(category string) []models.QuestionTemplate {
	var roots []models.QuestionTemplate
	for _, q := range c.ordered {
		if q.Category == category && q.DependsOnQuestionID == nil {
			roots = append(roots, q)
		}
	}
	return roots
}

// ScenarioQuestions returns the root question set for an absence scenario.
// The rules form a closed precedence chain; the first matching rule decides
// which categories stay.
func (c *Catalog) ScenarioQuestions(absenceType, reasonCategory string) []models.QuestionTemplate {
	var keep func(category string) bool
	if reasonCategory == models.ReasonMentalHealth {
		keep = func(cat string) bool {
			return cat == models.CategoryInitial || cat == models.CategoryMentalHealth
		}
	} else if reasonCategory == models.ReasonInjury {
		keep = func(cat string) bool {
			return cat == models.CategoryInitial || cat == models.CategoryMedical
		}
	} else if absenceType == models.AbsenceTypeExtended && reasonCategory == "Medical" {
		// Extended medical absences get the additional medical questions.
		keep = func(cat string) bool {
			return cat == models.CategoryInitial || cat == models.CategoryMedical
		}
	} else {
		keep = func(cat string) bool { return cat == models.CategoryInitial }
	}

	var scenario []models.QuestionTemplate
	for _, q := range c.ordered {
		if q.DependsOnQuestionID == nil && keep(q.Category) {
			scenario = append(scenario, q)
		}
	}
	return scenario
}

// ChildrenOf returns the questions a recorded answer to the parent unlocks,
// in catalog order.
func (c *Catalog) ChildrenOf(parentID primitive.ObjectID, answer string) []models.QuestionTemplate {
	var unlocked []models.QuestionTemplate
	for _, q := range c.children[parentID] {
		if triggerMatches(q.DependsOnAnswer, answer) {
			unlocked = append(unlocked, q)
		}
	}
	return unlocked
}

// triggerMatches tests whether an answer unlocks a dependent question. The
// trigger list is stored as a comma-joined string and membership is a
// substring containment test, matching the original LIKE '%answer%' lookup.
// An empty trigger means any answer to the parent unlocks the question.
func triggerMatches(triggers, answer string) bool {
	if triggers == "" {
		return true
	}
	return strings.Contains(triggers, answer)
}

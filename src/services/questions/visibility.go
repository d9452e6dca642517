package questions

import (
	"sort"

	"Backend-Firewatch-115/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VisibleQuestions computes the ordered question set a case should currently
// show: the scenario roots in catalog order, then every question unlocked by
// an answer in the history, in the order the triggering answers were given
// (catalog order within one trigger). A question never appears twice even if
// several answers unlock it. Pure and idempotent.
func VisibleQuestions(c *Catalog, absenceType, reasonCategory string, history []models.AbsenceQuestion) []models.QuestionTemplate {
	visible := c.ScenarioQuestions(absenceType, reasonCategory)

	seen := make(map[primitive.ObjectID]bool, len(visible))
	for _, q := range visible {
		seen[q.ID] = true
	}

	for _, child := range unlockedQuestions(c, history) {
		if !seen[child.ID] {
			seen[child.ID] = true
			visible = append(visible, child)
		}
	}

	return visible
}

// FollowUpQuestions returns only the dependent questions the answer history
// has unlocked, without the scenario roots.
func FollowUpQuestions(c *Catalog, history []models.AbsenceQuestion) []models.QuestionTemplate {
	var followUps []models.QuestionTemplate
	seen := make(map[primitive.ObjectID]bool)
	for _, child := range unlockedQuestions(c, history) {
		if !seen[child.ID] {
			seen[child.ID] = true
			followUps = append(followUps, child)
		}
	}
	return followUps
}

// unlockedQuestions walks the history in answered-at order and yields every
// child whose trigger the answer satisfies, duplicates included. Answers
// pointing at a template the catalog does not know are skipped: that is a
// data-quality gap, not a reason to fail the whole computation.
func unlockedQuestions(c *Catalog, history []models.AbsenceQuestion) []models.QuestionTemplate {
	var unlocked []models.QuestionTemplate
	for _, answered := range sortedByAnsweredAt(history) {
		if _, ok := c.Get(answered.QuestionTemplateID); !ok {
			continue
		}
		unlocked = append(unlocked, c.ChildrenOf(answered.QuestionTemplateID, answered.Answer)...)
	}
	return unlocked
}

// sortedByAnsweredAt returns a copy of the history in explicit timestamp
// order. The resolver and scorer must never rely on incidental container
// ordering.
func sortedByAnsweredAt(history []models.AbsenceQuestion) []models.AbsenceQuestion {
	ordered := make([]models.AbsenceQuestion, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnsweredAt.Before(ordered[j].AnsweredAt)
	})
	return ordered
}

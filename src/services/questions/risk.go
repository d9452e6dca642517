package questions

import (
	"strings"

	"Backend-Firewatch-115/src/models"
)

// Risk tags assigned to question templates at authoring time.
const (
	TagSelfHarm       = "self-harm"
	TagStressLevel    = "stress-level"
	TagRespiratory    = "respiratory-symptoms"
	TagMobility       = "mobility"
	TagConditionTrend = "condition-trend"
)

// riskRule raises the severity floor and records a flag when an answer
// matches. A rule applies when the answer carries the rule's risk tag, or —
// for answers saved before tagging existed — when the question text contains
// the keyword.
type riskRule struct {
	tag     string
	keyword string
	floor   int // index into models.RiskLevels
	flag    string
	match   func(answer string) bool
}

var riskRules = []riskRule{
	{
		tag:     TagSelfHarm,
		keyword: "self-harm",
		floor:   3,
		flag:    "Self-harm risk identified",
		match:   func(answer string) bool { return answer == "true" },
	},
	{
		tag:     TagStressLevel,
		keyword: "stress level",
		floor:   2,
		flag:    "High stress level reported",
		match:   isOneOf("High", "Very High"),
	},
	{
		tag:     TagRespiratory,
		keyword: "respiratory symptoms",
		floor:   1,
		flag:    "Respiratory symptoms present",
		match:   func(answer string) bool { return answer != "None" },
	},
	{
		tag:     TagMobility,
		keyword: "mobility",
		floor:   1,
		flag:    "Mobility affected by injury",
		match:   func(answer string) bool { return answer == "true" },
	},
	{
		tag:     TagConditionTrend,
		keyword: "feeling today",
		floor:   2,
		flag:    "Condition worsening",
		match:   isOneOf("Slightly Worse", "Much Worse"),
	},
}

func isOneOf(values ...string) func(string) bool {
	return func(answer string) bool {
		for _, v := range values {
			if answer == v {
				return true
			}
		}
		return false
	}
}

// AnalyzeRisk derives a risk assessment from the full answer history of a
// case. One pass in answered-at order; the final level is the highest floor
// any rule raised, so appending answers can never lower it. A rule that fires
// for several answers flags each of them.
func AnalyzeRisk(history []models.AbsenceQuestion) models.RiskAssessment {
	currentRiskIndex := 0 // start at Low
	flags := []string{}

	for _, answered := range sortedByAnsweredAt(history) {
		for _, rule := range riskRules {
			if !rule.applies(answered) {
				continue
			}
			if rule.match(answered.Answer) {
				if rule.floor > currentRiskIndex {
					currentRiskIndex = rule.floor
				}
				flags = append(flags, rule.flag)
			}
		}
	}

	riskLevel := models.RiskLevels[currentRiskIndex]

	return models.RiskAssessment{
		RiskLevel:                  riskLevel,
		Flags:                      flags,
		RequiresImmediateAttention: riskLevel == models.RiskCritical,
		RecommendedActions:         recommendedActions(riskLevel, flags),
	}
}

func (r riskRule) applies(answered models.AbsenceQuestion) bool {
	if answered.RiskTag != "" {
		return answered.RiskTag == r.tag
	}
	return strings.Contains(answered.QuestionText, r.keyword)
}

// recommendedActions maps a level and the triggered flags to follow-up
// actions. The rules are additive and evaluated in this fixed order;
// overlapping rules may repeat an action.
func recommendedActions(riskLevel string, flags []string) []string {
	actions := []string{}

	if riskLevel == models.RiskCritical {
		actions = append(actions,
			"Immediate supervisor contact required",
			"Emergency support services referral",
			"Safety plan development",
		)
	}

	if riskLevel == models.RiskHigh {
		actions = append(actions,
			"Manager follow-up within 24 hours",
			"EAP referral recommended",
			"Wellness check scheduled",
		)
	}

	if riskLevel == models.RiskModerate {
		actions = append(actions,
			"Regular follow-up calls",
			"Peer support connection",
			"Monitor for changes",
		)
	}

	if containsFlag(flags, "Respiratory symptoms present") {
		actions = append(actions,
			"Medical assessment recommended",
			"Consider communicable disease protocols",
		)
	}

	if containsFlag(flags, "Mobility affected by injury") {
		actions = append(actions,
			"Occupational health assessment",
			"Modified duty consideration",
		)
	}

	return actions
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// RequiresMentalHealthFollowUp reports whether any answered question touches
// a mental-health topic. Substring matches are case-sensitive.
func RequiresMentalHealthFollowUp(history []models.AbsenceQuestion) bool {
	for _, answered := range history {
		if strings.Contains(answered.QuestionText, "Mental Health") ||
			strings.Contains(answered.QuestionText, "stress") ||
			strings.Contains(answered.QuestionText, "self-harm") {
			return true
		}
	}
	return false
}

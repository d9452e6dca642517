package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRiskEscalationEmail(t *testing.T) {
	subject, html := BuildRiskEscalationEmail(
		"Jordan Archer",
		"64f0c1e2a1b2c3d4e5f60718",
		"Critical",
		[]string{"Self-harm risk identified", "High stress level reported"},
	)

	assert.Equal(t, "[URGENT] Critical risk assessment for Jordan Archer", subject)
	assert.Contains(t, html, "Jordan Archer")
	assert.Contains(t, html, "64f0c1e2a1b2c3d4e5f60718")
	assert.Contains(t, html, "<li>Self-harm risk identified</li>")
	assert.Contains(t, html, "<li>High stress level reported</li>")
}

func TestBuildRiskEscalationEmailNoFlags(t *testing.T) {
	_, html := BuildRiskEscalationEmail("Jordan Archer", "id", "Critical", nil)
	assert.NotContains(t, html, "<ul>")
}

func TestBuildFollowUpReminderEmail(t *testing.T) {
	subject, html := BuildFollowUpReminderEmail("Follow-up Call", "Jordan Archer", "abc123")

	assert.Equal(t, "Reminder: Follow-up Call due for Jordan Archer", subject)
	assert.Contains(t, html, "Follow-up Call")
	assert.Contains(t, html, "abc123")
}

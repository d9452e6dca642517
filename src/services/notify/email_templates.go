package notify

import (
	"fmt"
	"strings"
)

// BuildRiskEscalationEmail renders the email sent to the assigned manager
// when an absence's answers score Critical.
func BuildRiskEscalationEmail(employeeName, absenceID, riskLevel string, flags []string) (subject, html string) {
	subject = fmt.Sprintf("[URGENT] %s risk assessment for %s", riskLevel, employeeName)

	var b strings.Builder
	b.WriteString("<h2>Critical risk assessment</h2>")
	b.WriteString(fmt.Sprintf("<p>The latest answers recorded for <b>%s</b> (absence %s) scored <b>%s</b>.</p>", employeeName, absenceID, riskLevel))
	if len(flags) > 0 {
		b.WriteString("<p>Triggered flags:</p><ul>")
		for _, f := range flags {
			b.WriteString("<li>" + f + "</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("<p>Immediate supervisor contact is required. Please follow the emergency support protocol.</p>")

	return subject, b.String()
}

// BuildFollowUpReminderEmail renders the reminder for a workflow step that
// has reached its due date.
func BuildFollowUpReminderEmail(stepType, employeeName, absenceID string) (subject, html string) {
	subject = fmt.Sprintf("Reminder: %s due for %s", stepType, employeeName)
	html = fmt.Sprintf(
		"<p>The workflow step <b>%s</b> for <b>%s</b> (absence %s) is due today. Please complete it and record the outcome.</p>",
		stepType, employeeName, absenceID,
	)
	return subject, html
}

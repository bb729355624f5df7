package attendance

import (
	"fmt"

	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

const meetsRequirementMessage = "You can meet your work time requirement."

// status picks the message and severity. Insufficient effective work wins
// over an exceeded break.
func (c *Calculator) status(breakLeft, effectiveWork domain.Span) (string, domain.Severity) {
	requiredWork := domain.Span(c.policy.RequiredWorkMinutes)

	if effectiveWork < requiredWork {
		return fmt.Sprintf(
			"Warning: Your effective work time (%s) is less than the required %s. "+
				"This is due to the break duration you've taken (or plan to take).",
			effectiveWork, requiredWork.Compact(),
		), domain.SeverityError
	}

	switch {
	case breakLeft < 0:
		return fmt.Sprintf("%s However, you have exceeded your designated break by %s.",
			meetsRequirementMessage, breakLeft.Abs(),
		), domain.SeverityExceeded
	case breakLeft > 0:
		return fmt.Sprintf("%s You have %s break time remaining.",
			meetsRequirementMessage, breakLeft,
		), domain.SeverityRemaining
	default:
		return meetsRequirementMessage + " You have used all your designated break time.", domain.SeverityExact
	}
}

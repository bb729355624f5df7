package attendance

import (
	"fmt"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

const malformedInputMessage = "Invalid time format. Please use HH:MM for both arrival and break time spent."

// Calculator derives departure time, break allowance and compliance status
// from an arrival time and the break already taken. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	policy config.Policy
}

func NewCalculator(policy config.Policy) *Calculator {
	return &Calculator{
		policy: policy,
	}
}

func (c *Calculator) Policy() config.Policy {
	return c.policy
}

// Calculate parses both inputs and evaluates them against the policy.
// Failures are always *domain.ValidationError; no result fields are
// computed once validation fails.
func (c *Calculator) Calculate(arrivalTimeStr, breakTimeSpentStr string) (*Result, error) {
	arrival, err := domain.ParseClockTime(arrivalTimeStr)
	if err != nil {
		return nil, domain.NewMalformedInputError(domain.FieldArrivalTime, malformedInputMessage)
	}

	breakSpent, err := domain.ParseSpan(breakTimeSpentStr)
	if err != nil {
		return nil, domain.NewMalformedInputError(domain.FieldBreakTimeSpent, malformedInputMessage)
	}

	if !arrival.Within(c.policy.MinArrival, c.policy.MaxArrival) {
		return nil, domain.NewOutOfRangeError(domain.FieldArrivalTime, c.arrivalWindowMessage())
	}

	return c.evaluate(arrival, breakSpent), nil
}

func (c *Calculator) CalculateInput(in Input) (*Result, error) {
	return c.Calculate(in.ArrivalTime, in.BreakTimeSpent)
}

func (c *Calculator) evaluate(arrival domain.ClockTime, breakSpent domain.Span) *Result {
	departure := arrival.Add(c.policy.RequiredTotalOfficeMinutes)
	breakLeft := domain.Span(c.policy.DesignatedBreakMinutes) - breakSpent
	effectiveWork := domain.Span(c.policy.RequiredTotalOfficeMinutes) - breakSpent

	result := &Result{
		ArrivalTime:           arrival.String(),
		DepartureTime:         departure.String(),
		BreakTimeSpent:        breakSpent.String(),
		BreakTimeLeft:         breakLeft.NonNegative().String(),
		EffectiveWorkTime:     effectiveWork.String(),
		BreakTimeSpentMinutes: breakSpent.Minutes(),
		BreakTimeLeftMinutes:  breakLeft.Minutes(),
		EffectiveWorkMinutes:  effectiveWork.Minutes(),
	}

	result.StatusMessage, result.Severity = c.status(breakLeft, effectiveWork)
	result.Tone = result.Severity.Tone()

	return result
}

func (c *Calculator) arrivalWindowMessage() string {
	return fmt.Sprintf("Arrival time must be between %s and %s.",
		c.policy.MinArrival.Format12h(),
		c.policy.MaxArrival.Format12h(),
	)
}

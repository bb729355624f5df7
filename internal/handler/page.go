package handler

import (
	"errors"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

const (
	colorDefault = "text-gray-700"
	colorError   = "text-red-600"
	colorWarning = "text-orange-600"
	colorSuccess = "text-green-600"

	unexpectedErrorMessage = "Unable to calculate attendance. Please try again."
)

type PageData struct {
	ArrivalTimeStr    string
	BreakTimeSpentStr string

	DepartureTime     string
	BreakTimeSpent    string
	BreakTimeLeft     string
	EffectiveWorkTime string

	StatusMessage string
	StatusColor   string
	Severity      domain.Severity

	Policy attendance.PolicySummary
}

func newPageData(policy config.Policy) *PageData {
	return &PageData{
		StatusColor: colorDefault,
		Policy:      attendance.SummarizePolicy(policy),
	}
}

func (p *PageData) applyResult(result *attendance.Result) {
	p.DepartureTime = result.DepartureTime
	p.BreakTimeSpent = result.BreakTimeSpent
	p.BreakTimeLeft = result.BreakTimeLeft
	p.EffectiveWorkTime = result.EffectiveWorkTime
	p.StatusMessage = result.StatusMessage
	p.Severity = result.Severity
	p.StatusColor = toneColor(result.Tone)
}

func (p *PageData) applyError(err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		p.StatusMessage = vErr.Message
		p.Severity = vErr.Severity()
	} else {
		p.StatusMessage = unexpectedErrorMessage
		p.Severity = domain.SeverityError
	}
	p.StatusColor = toneColor(p.Severity.Tone())
}

func (p *PageData) HasResult() bool {
	return p.DepartureTime != ""
}

func toneColor(tone domain.Tone) string {
	switch tone {
	case domain.ToneError:
		return colorError
	case domain.ToneWarning:
		return colorWarning
	case domain.ToneSuccess:
		return colorSuccess
	default:
		return colorDefault
	}
}

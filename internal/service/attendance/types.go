package attendance

import (
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

type Input struct {
	ArrivalTime    string `json:"arrival_time" yaml:"arrival_time"`
	BreakTimeSpent string `json:"break_time_spent" yaml:"break_time_spent"`
}

// Result is the outcome of one successful calculation. The *Minutes fields
// keep the signed values the display strings were derived from.
type Result struct {
	ArrivalTime       string          `json:"arrival_time" yaml:"arrival_time"`
	DepartureTime     string          `json:"departure_time" yaml:"departure_time"`
	BreakTimeSpent    string          `json:"break_time_spent" yaml:"break_time_spent"`
	BreakTimeLeft     string          `json:"break_time_left" yaml:"break_time_left"`
	EffectiveWorkTime string          `json:"effective_work_time" yaml:"effective_work_time"`
	StatusMessage     string          `json:"status_message" yaml:"status_message"`
	Severity          domain.Severity `json:"severity" yaml:"severity"`
	Tone              domain.Tone     `json:"tone" yaml:"tone"`

	BreakTimeSpentMinutes int `json:"break_time_spent_minutes" yaml:"break_time_spent_minutes"`
	BreakTimeLeftMinutes  int `json:"break_time_left_minutes" yaml:"break_time_left_minutes"`
	EffectiveWorkMinutes  int `json:"effective_work_minutes" yaml:"effective_work_minutes"`
}

func (r *Result) MeetsWorkRequirement() bool {
	return !r.Severity.IsCritical()
}

func (r *Result) BreakExceeded() bool {
	return r.BreakTimeLeftMinutes < 0
}

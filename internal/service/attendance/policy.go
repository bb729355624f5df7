package attendance

import (
	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

// PolicySummary is the policy as shown to people: raw minutes plus
// human-readable forms.
type PolicySummary struct {
	RequiredTotalOfficeMinutes int    `json:"required_total_office_minutes" yaml:"required_total_office_minutes"`
	RequiredWorkMinutes        int    `json:"required_work_minutes" yaml:"required_work_minutes"`
	DesignatedBreakMinutes     int    `json:"designated_break_minutes" yaml:"designated_break_minutes"`
	MinArrival                 string `json:"min_arrival" yaml:"min_arrival"`
	MaxArrival                 string `json:"max_arrival" yaml:"max_arrival"`

	RequiredTotalOffice string `json:"required_total_office" yaml:"required_total_office"`
	RequiredWork        string `json:"required_work" yaml:"required_work"`
	DesignatedBreak     string `json:"designated_break" yaml:"designated_break"`
}

func SummarizePolicy(p config.Policy) PolicySummary {
	return PolicySummary{
		RequiredTotalOfficeMinutes: p.RequiredTotalOfficeMinutes,
		RequiredWorkMinutes:        p.RequiredWorkMinutes,
		DesignatedBreakMinutes:     p.DesignatedBreakMinutes,
		MinArrival:                 p.MinArrival.String(),
		MaxArrival:                 p.MaxArrival.String(),
		RequiredTotalOffice:        domain.Span(p.RequiredTotalOfficeMinutes).Compact(),
		RequiredWork:               domain.Span(p.RequiredWorkMinutes).Compact(),
		DesignatedBreak:            domain.Span(p.DesignatedBreakMinutes).Compact(),
	}
}

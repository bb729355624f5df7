package config

import (
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

const (
	requiredTotalOfficeMinutes = 9 * 60
	requiredWorkMinutes        = 7*60 + 30
	designatedBreakMinutes     = 1*60 + 30
)

var (
	minArrival = domain.MustClockTime(8, 0)
	maxArrival = domain.MustClockTime(10, 0)
)

// Policy holds the office attendance rules. It is built once at startup and
// never mutated afterwards.
type Policy struct {
	RequiredTotalOfficeMinutes int
	RequiredWorkMinutes        int
	DesignatedBreakMinutes     int
	MinArrival                 domain.ClockTime
	MaxArrival                 domain.ClockTime
}

func DefaultPolicy() Policy {
	return Policy{
		RequiredTotalOfficeMinutes: requiredTotalOfficeMinutes,
		RequiredWorkMinutes:        requiredWorkMinutes,
		DesignatedBreakMinutes:     designatedBreakMinutes,
		MinArrival:                 minArrival,
		MaxArrival:                 maxArrival,
	}
}

func (p Policy) Validate() error {
	if p.RequiredTotalOfficeMinutes <= 0 {
		return ErrInvalidOfficeMinutes
	}
	if p.RequiredWorkMinutes <= 0 || p.RequiredWorkMinutes > p.RequiredTotalOfficeMinutes {
		return ErrInvalidWorkMinutes
	}
	if p.DesignatedBreakMinutes < 0 {
		return ErrInvalidBreakMinutes
	}
	if p.MaxArrival.Before(p.MinArrival) {
		return ErrInvertedArrivalWindow
	}
	return nil
}

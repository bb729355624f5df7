package domain

import (
	"fmt"
	"strconv"
)

// Span is a signed duration counted in whole minutes.
type Span int

func SpanOf(hours, minutes int) Span {
	return Span(hours*MinutesPerHour + minutes)
}

// ParseSpan reads "HH:MM" as hours and minutes of elapsed time.
// Hours may run to 99; minutes must stay below 60.
func ParseSpan(s string) (Span, error) {
	hours, minutes, err := splitHHMM(s)
	if err != nil {
		return 0, err
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: minute %d outside 0-59", ErrMalformedInput, minutes)
	}
	return SpanOf(hours, minutes), nil
}

func (s Span) Minutes() int {
	return int(s)
}

func (s Span) Abs() Span {
	if s < 0 {
		return -s
	}
	return s
}

// NonNegative clamps the span at zero.
func (s Span) NonNegative() Span {
	if s < 0 {
		return 0
	}
	return s
}

// String renders "H:MM:SS" with unpadded hours and zero seconds.
// Negative spans get a leading minus: -1:30:00.
func (s Span) String() string {
	sign := ""
	if s < 0 {
		sign = "-"
	}
	abs := int(s.Abs())
	return sign + strconv.Itoa(abs/MinutesPerHour) + fmt.Sprintf(":%02d:00", abs%MinutesPerHour)
}

// Compact renders "7h 30m", the form used in status messages.
func (s Span) Compact() string {
	sign := ""
	if s < 0 {
		sign = "-"
	}
	abs := int(s.Abs())
	return fmt.Sprintf("%s%dh %dm", sign, abs/MinutesPerHour, abs%MinutesPerHour)
}

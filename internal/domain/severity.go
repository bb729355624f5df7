package domain

// Severity classifies a status message for its visual treatment.
type Severity string

const (
	SeverityError     Severity = "error"
	SeverityWarning   Severity = "warning"
	SeverityExceeded  Severity = "exceeded"
	SeverityRemaining Severity = "remaining"
	SeverityExact     Severity = "exact"
)

// Tone groups severities into the three visual variants the page knows about.
type Tone string

const (
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) Tone() Tone {
	switch s {
	case SeverityError:
		return ToneError
	case SeverityWarning, SeverityExceeded:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

func (s Severity) IsCritical() bool {
	return s == SeverityError
}

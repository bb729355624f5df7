package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	hhmmLayout = "HH:MM"
)

var hhmmPattern = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// ClockTime is a time of day with minute precision and no date or zone.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: hour %d outside 0-23", ErrMalformedInput, hour)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: minute %d outside 0-59", ErrMalformedInput, minute)
	}
	return ClockTime{minutes: hour*MinutesPerHour + minute}, nil
}

// MustClockTime is NewClockTime for values known at compile time.
func MustClockTime(hour, minute int) ClockTime {
	t, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseClockTime accepts exactly "HH:MM" on a 24-hour clock.
func ParseClockTime(s string) (ClockTime, error) {
	hour, minute, err := splitHHMM(s)
	if err != nil {
		return ClockTime{}, err
	}
	return NewClockTime(hour, minute)
}

// Add shifts the time by a signed number of minutes, wrapping around midnight.
func (t ClockTime) Add(minutes int) ClockTime {
	m := (t.minutes + minutes) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime{minutes: m}
}

func (t ClockTime) Hour() int {
	return t.minutes / MinutesPerHour
}

func (t ClockTime) Minute() int {
	return t.minutes % MinutesPerHour
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.minutes < other.minutes
}

func (t ClockTime) After(other ClockTime) bool {
	return t.minutes > other.minutes
}

// Within reports whether t lies in [lo, hi], inclusive at both ends.
func (t ClockTime) Within(lo, hi ClockTime) bool {
	return !t.Before(lo) && !t.After(hi)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12h renders the time as "08:00 AM".
func (t ClockTime) Format12h() string {
	hour := t.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), suffix)
}

func splitHHMM(s string) (int, int, error) {
	m := hhmmPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q does not match %s", ErrMalformedInput, s, hhmmLayout)
	}
	// Both groups are exactly two ASCII digits, so Atoi cannot fail.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour, minute, nil
}

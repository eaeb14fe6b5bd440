package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBirthHour   = errors.New("birth hour must be between 1 and 12")
	ErrInvalidBirthMinute = errors.New("birth minute must be between 0 and 59")
	ErrInvalidPeriod      = errors.New("period must be AM or PM")
)

type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

func (p Period) IsValid() bool {
	return p == AM || p == PM
}

// BirthTime is the composite output of the time-of-birth picker: a 12-hour
// hour/minute/period triple plus an independent "unknown" flag. The numeric
// values are retained while unknown is set, so toggling unknown off restores
// the last-edited time rather than defaults.
//
// Invariant: Value() == nil if and only if Unknown() is true.
type BirthTime struct {
	hour    int
	minute  int
	period  Period
	unknown bool
}

// NewBirthTime starts at the picker's defaults: 12:00 AM, known.
func NewBirthTime() BirthTime {
	return BirthTime{hour: 12, minute: 0, period: AM}
}

func (t BirthTime) WithTime(hour, minute int, period Period) (BirthTime, error) {
	if hour < 1 || hour > 12 {
		return t, ErrInvalidBirthHour
	}
	if minute < 0 || minute > 59 {
		return t, ErrInvalidBirthMinute
	}
	if !period.IsValid() {
		return t, ErrInvalidPeriod
	}
	t.hour = hour
	t.minute = minute
	t.period = period
	return t, nil
}

func (t BirthTime) WithUnknown(unknown bool) BirthTime {
	t.unknown = unknown
	return t
}

func (t BirthTime) Hour() int      { return t.hour }
func (t BirthTime) Minute() int    { return t.minute }
func (t BirthTime) Period() Period { return t.period }
func (t BirthTime) Unknown() bool  { return t.unknown }

// ParseBirthTime is the inverse of Value: it reads the "HH:MM AM/PM" wire
// form back into a validated BirthTime.
func ParseBirthTime(s string) (BirthTime, error) {
	var (
		hour, minute int
		period       string
	)
	if _, err := fmt.Sscanf(s, "%d:%d %s", &hour, &minute, &period); err != nil {
		return BirthTime{}, fmt.Errorf("malformed birth time %q: %w", s, err)
	}
	return NewBirthTime().WithTime(hour, minute, Period(period))
}

// Value returns the composed "HH:MM AM/PM" string, or nil when unknown.
func (t BirthTime) Value() *string {
	if t.unknown {
		return nil
	}
	s := fmt.Sprintf("%02d:%02d %s", t.hour, t.minute, t.period)
	return &s
}

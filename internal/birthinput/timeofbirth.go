package birthinput

import (
	"errors"

	"vedicjivan-booking/internal/domain/booking"
)

// ErrTimeUnknown is returned when the numeric selectors are used while the
// "unknown" flag is set; they are disabled, not cleared.
var ErrTimeUnknown = errors.New("birth time is marked unknown")

// TimeOfBirthPicker wraps the BirthTime value object with the picker's
// interaction rules: while "unknown" is on, edits are rejected but the last
// values are retained so toggling unknown off restores them.
type TimeOfBirthPicker struct {
	value booking.BirthTime
}

func NewTimeOfBirthPicker() *TimeOfBirthPicker {
	return &TimeOfBirthPicker{value: booking.NewBirthTime()}
}

func (p *TimeOfBirthPicker) SetTime(hour, minute int, period booking.Period) error {
	if p.value.Unknown() {
		return ErrTimeUnknown
	}
	next, err := p.value.WithTime(hour, minute, period)
	if err != nil {
		return err
	}
	p.value = next
	return nil
}

func (p *TimeOfBirthPicker) SetUnknown(unknown bool) {
	p.value = p.value.WithUnknown(unknown)
}

func (p *TimeOfBirthPicker) Unknown() bool {
	return p.value.Unknown()
}

// Value is the composite output: nil when unknown, "HH:MM AM/PM" otherwise.
func (p *TimeOfBirthPicker) Value() *string {
	return p.value.Value()
}

func (p *TimeOfBirthPicker) Snapshot() booking.BirthTime {
	return p.value
}

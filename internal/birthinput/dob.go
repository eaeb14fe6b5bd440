// Package birthinput models the three cooperating birth-detail inputs: the
// bounded date-of-birth calendar, the time-of-birth picker with its "unknown"
// escape hatch, and the debounced place-of-birth autocomplete. Their outputs
// are merged into the booking draft by the wizard.
package birthinput

import (
	"fmt"
	"time"

	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
)

// yearSpan bounds the DOB calendar to [currentYear-100, today].
const yearSpan = 100

// DOBCalendar is the date-of-birth picker: a month view whose navigation is
// clamped to the allowed range. Dates are plain calendar dates; no time-zone
// conversion happens anywhere in here.
type DOBCalendar struct {
	clock    clock.Clock
	visible  time.Time // first day of the visible month
	selected string    // ISO date, empty until a day is picked
}

func NewDOBCalendar(clk clock.Clock, selected string) *DOBCalendar {
	today := clock.Today(clk)
	visible := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	if selected != "" {
		if t, err := time.ParseInLocation("2006-01-02", selected, today.Location()); err == nil {
			visible = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, today.Location())
		}
	}

	return &DOBCalendar{clock: clk, visible: visible, selected: selected}
}

func (c *DOBCalendar) MinYear() int {
	return clock.Today(c.clock).Year() - yearSpan
}

func (c *DOBCalendar) VisibleYear() int         { return c.visible.Year() }
func (c *DOBCalendar) VisibleMonth() time.Month { return c.visible.Month() }
func (c *DOBCalendar) Selected() string         { return c.selected }

// Years lists the selectable years, newest first.
func (c *DOBCalendar) Years() []int {
	current := clock.Today(c.clock).Year()
	years := make([]int, 0, yearSpan+1)
	for y := current; y >= c.MinYear(); y-- {
		years = append(years, y)
	}
	return years
}

// PrevMonth navigates back one month unless that would leave the minimum
// year.
func (c *DOBCalendar) PrevMonth() {
	prev := c.visible.AddDate(0, -1, 0)
	if prev.Year() >= c.MinYear() {
		c.visible = prev
	}
}

// NextMonth navigates forward one month unless the month starts after today.
func (c *DOBCalendar) NextMonth() {
	next := c.visible.AddDate(0, 1, 0)
	if !next.After(clock.Today(c.clock)) {
		c.visible = next
	}
}

// SetYear jumps to the same month in another year, clamping to the current
// month when the target would be in the future.
func (c *DOBCalendar) SetYear(year int) {
	if year < c.MinYear() {
		return
	}
	today := clock.Today(c.clock)
	target := time.Date(year, c.visible.Month(), 1, 0, 0, 0, 0, c.visible.Location())
	if target.After(today) {
		target = time.Date(year, today.Month(), 1, 0, 0, 0, 0, c.visible.Location())
	}
	c.visible = target
}

// SetMonth jumps to another month in the visible year; future months are
// ignored.
func (c *DOBCalendar) SetMonth(month time.Month) {
	target := time.Date(c.visible.Year(), month, 1, 0, 0, 0, 0, c.visible.Location())
	if target.After(clock.Today(c.clock)) {
		return
	}
	c.visible = target
}

// DOBDay is one cell of the visible month.
type DOBDay struct {
	Day      int
	Date     string
	Future   bool
	Selected bool
}

func (c *DOBCalendar) Days() []DOBDay {
	today := clock.Today(c.clock)
	daysInMonth := c.visible.AddDate(0, 1, -1).Day()

	days := make([]DOBDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(c.visible.Year(), c.visible.Month(), d, 0, 0, 0, 0, c.visible.Location())
		iso := fmt.Sprintf("%04d-%02d-%02d", date.Year(), date.Month(), date.Day())
		days = append(days, DOBDay{
			Day:      d,
			Date:     iso,
			Future:   date.After(today),
			Selected: iso == c.selected,
		})
	}
	return days
}

// Select picks a day of the visible month and returns its ISO date. Future
// days are rendered but never selectable.
func (c *DOBCalendar) Select(day int) (string, error) {
	date := time.Date(c.visible.Year(), c.visible.Month(), day, 0, 0, 0, 0, c.visible.Location())
	if day < 1 || date.Month() != c.visible.Month() {
		return "", errs.Newf("day %d is not in the visible month", day)
	}
	if date.After(clock.Today(c.clock)) {
		return "", errs.New("date of birth cannot be in the future")
	}
	c.selected = fmt.Sprintf("%04d-%02d-%02d", date.Year(), date.Month(), date.Day())
	return c.selected, nil
}

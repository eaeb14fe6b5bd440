package availability

import (
	"context"
	"time"

	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
)

// Calendar is the booking-date picker: month navigation over the resolver,
// with the selectable-day rule enforced on selection. Changing the month
// refetches; there is no merge with previously fetched months.
type Calendar struct {
	resolver *Resolver
	clock    clock.Clock

	year     int
	month    time.Month
	view     MonthView
	loaded   bool
	selected string
}

func NewCalendar(resolver *Resolver, clk clock.Clock) *Calendar {
	today := clock.Today(clk)
	return &Calendar{
		resolver: resolver,
		clock:    clk,
		year:     today.Year(),
		month:    today.Month(),
	}
}

// Load fetches the visible month. Call after construction and after each
// navigation.
func (c *Calendar) Load(ctx context.Context) MonthView {
	c.view = c.resolver.Month(ctx, c.year, c.month)
	c.loaded = true
	return c.view
}

func (c *Calendar) PrevMonth(ctx context.Context) MonthView {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	c.year, c.month = first.Year(), first.Month()
	return c.Load(ctx)
}

func (c *Calendar) NextMonth(ctx context.Context) MonthView {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	c.year, c.month = first.Year(), first.Month()
	return c.Load(ctx)
}

func (c *Calendar) View() MonthView   { return c.view }
func (c *Calendar) Selected() string  { return c.selected }
func (c *Calendar) Year() int         { return c.year }
func (c *Calendar) Month() time.Month { return c.month }

// Select picks a date of the loaded month; unselectable cells are refused.
func (c *Calendar) Select(date string) error {
	if !c.loaded {
		return errs.New("calendar month not loaded")
	}
	for _, cell := range c.view.Days {
		if cell.Date != date {
			continue
		}
		if !cell.Selectable {
			return errs.Newf("date %s is not selectable", date)
		}
		c.selected = date
		return nil
	}
	return errs.Newf("date %s is not in the visible month", date)
}

// Package availability derives which calendar dates and time slots are
// bookable from the backend's availability snapshots. Fetch failures are
// never swallowed into "no availability": results carry the error so the UI
// can tell "nothing open" from "couldn't check".
package availability

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/pkg/clock"
)

// Port is the slice of the availability API the resolver needs.
type Port interface {
	ByDate(ctx context.Context, date string) (*api.Day, error)
	Range(ctx context.Context, start, end string) ([]api.Day, error)
	Settings(ctx context.Context) (*api.BusinessHoursSettings, error)
}

type Resolver struct {
	port   Port
	clock  clock.Clock
	logger *slog.Logger
}

func NewResolver(port Port, clk clock.Clock, logger *slog.Logger) *Resolver {
	return &Resolver{port: port, clock: clk, logger: logger}
}

// DayCell is one calendar cell with the reason it is or isn't selectable.
type DayCell struct {
	Date        string
	Day         int
	Past        bool
	Holiday     bool
	Closed      bool // weekday closed per business-hours settings
	FullyBooked bool
	Selectable  bool
}

// MonthView is a point-in-time snapshot of one displayed month. Err is set
// when the backend couldn't be reached; the cells then degrade to
// unselectable rather than erroring the page.
type MonthView struct {
	Year  int
	Month time.Month
	Days  []DayCell
	Err   error
}

// Month fetches the day-records and business-hours settings for one month
// view. The two fetches run concurrently; each navigation triggers a fresh
// fetch, nothing is cached across months.
func (r *Resolver) Month(ctx context.Context, year int, month time.Month) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	start := first.Format("2006-01-02")
	end := last.Format("2006-01-02")

	var (
		days     []api.Day
		settings *api.BusinessHoursSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		days, err = r.port.Range(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = r.port.Settings(gctx)
		return err
	})

	view := MonthView{Year: year, Month: month}
	if err := g.Wait(); err != nil {
		r.logger.Warn("availability fetch failed, calendar degrades to unavailable",
			"month", first.Format("2006-01"), "error", err)
		view.Err = err
		view.Days = r.buildCells(first, last, nil, nil)
		return view
	}

	byDate := make(map[string]api.Day, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}
	view.Days = r.buildCells(first, last, byDate, closedWeekdays(settings))
	return view
}

func (r *Resolver) buildCells(first, last time.Time, byDate map[string]api.Day, closed map[time.Weekday]bool) []DayCell {
	today := clock.Today(r.clock)

	cells := make([]DayCell, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		date := first.AddDate(0, 0, d-1)
		iso := date.Format("2006-01-02")

		cell := DayCell{
			Date:   iso,
			Day:    d,
			Past:   date.Before(today),
			Closed: closed[date.Weekday()],
		}

		record, exists := byDate[iso]
		if exists {
			cell.Holiday = record.IsHoliday
			cell.FullyBooked = !hasOpenSlot(record)
		}

		// Selectable iff: not past, a day-record exists, not a holiday, the
		// weekday is open, and at least one slot is unbooked.
		cell.Selectable = !cell.Past && exists && !cell.Holiday && !cell.Closed && !cell.FullyBooked
		cells = append(cells, cell)
	}
	return cells
}

// SlotsResult carries the open slots for one day, or the fetch error.
type SlotsResult struct {
	Date  string
	Slots []api.Slot
	Err   error
}

// SlotsFor fetches the open (unbooked) slots for the time-slot step.
func (r *Resolver) SlotsFor(ctx context.Context, date string) SlotsResult {
	day, err := r.port.ByDate(ctx, date)
	if err != nil {
		r.logger.Warn("slot fetch failed, showing no slots", "date", date, "error", err)
		return SlotsResult{Date: date, Err: err}
	}
	if day == nil {
		return SlotsResult{Date: date}
	}

	open := make([]api.Slot, 0, len(day.Slots))
	for _, s := range day.Slots {
		if !s.Booked {
			open = append(open, s)
		}
	}
	return SlotsResult{Date: date, Slots: open}
}

func hasOpenSlot(day api.Day) bool {
	for _, s := range day.Slots {
		if !s.Booked {
			return true
		}
	}
	return false
}

func closedWeekdays(settings *api.BusinessHoursSettings) map[time.Weekday]bool {
	closed := make(map[time.Weekday]bool)
	if settings == nil {
		return closed
	}
	for _, wh := range settings.WeeklyHours {
		if !wh.IsOpen {
			// Backend uses Mon=0; time.Weekday uses Sun=0.
			closed[time.Weekday((wh.Day+1)%7)] = true
		}
	}
	return closed
}

//go:build unit

package birthinput_test

import (
	"testing"
	"time"

	"vedicjivan-booking/internal/birthinput"
	"vedicjivan-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 9, 10, 15, 0, 0, 0, time.Local))
}

func TestDOBCalendar(t *testing.T) {
	t.Run("year range spans a century ending today", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "")

		years := cal.Years()
		require.Len(t, years, 101)
		assert.Equal(t, 2026, years[0])
		assert.Equal(t, 1926, years[len(years)-1])
		assert.Equal(t, 1926, cal.MinYear())
	})

	t.Run("opens on the selected date's month", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "1992-03-21")
		assert.Equal(t, 1992, cal.VisibleYear())
		assert.Equal(t, time.March, cal.VisibleMonth())
		assert.Equal(t, "1992-03-21", cal.Selected())
	})

	t.Run("future days render but cannot be selected", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "")

		var sawFuture bool
		for _, day := range cal.Days() {
			if day.Date == "2026-09-11" {
				sawFuture = day.Future
			}
		}
		assert.True(t, sawFuture)

		_, err := cal.Select(11)
		assert.Error(t, err)

		iso, err := cal.Select(10)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-10", iso)
	})

	t.Run("navigation clamps at both bounds", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "")

		// Cannot move past the current month.
		cal.NextMonth()
		assert.Equal(t, time.September, cal.VisibleMonth())
		assert.Equal(t, 2026, cal.VisibleYear())

		// Cannot jump below the minimum year.
		cal.SetYear(1900)
		assert.Equal(t, 2026, cal.VisibleYear())

		cal.SetYear(1926)
		assert.Equal(t, 1926, cal.VisibleYear())
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		cal.PrevMonth()
		assert.Equal(t, time.January, cal.VisibleMonth())
		cal.PrevMonth()
		// January of the minimum year is the floor.
		assert.Equal(t, time.January, cal.VisibleMonth())
		assert.Equal(t, 1926, cal.VisibleYear())
	})

	t.Run("year jump into the future clamps to the current month", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "")
		cal.SetYear(1990)
		cal.SetMonth(time.December)
		cal.SetYear(2026)
		assert.Equal(t, time.September, cal.VisibleMonth())
	})

	t.Run("future months within the year are ignored", func(t *testing.T) {
		cal := birthinput.NewDOBCalendar(fixedClock(), "")
		cal.SetMonth(time.December)
		assert.Equal(t, time.September, cal.VisibleMonth())
		cal.SetMonth(time.February)
		assert.Equal(t, time.February, cal.VisibleMonth())
	})
}

func TestTimeOfBirthPicker(t *testing.T) {
	picker := birthinput.NewTimeOfBirthPicker()

	require.NoError(t, picker.SetTime(10, 30, "AM"))
	require.NotNil(t, picker.Value())
	assert.Equal(t, "10:30 AM", *picker.Value())

	// While unknown, edits are rejected and the value reads nil.
	picker.SetUnknown(true)
	assert.Nil(t, picker.Value())
	assert.ErrorIs(t, picker.SetTime(11, 0, "AM"), birthinput.ErrTimeUnknown)

	// Toggling back restores the retained time.
	picker.SetUnknown(false)
	require.NotNil(t, picker.Value())
	assert.Equal(t, "10:30 AM", *picker.Value())
}

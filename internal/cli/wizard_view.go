package cli

import (
	"context"
	"fmt"
	"time"

	"vedicjivan-booking/internal/availability"
	"vedicjivan-booking/internal/birthinput"
	"vedicjivan-booking/internal/domain/booking"
	"vedicjivan-booking/internal/places"
	"vedicjivan-booking/internal/wizard"
)

// runWizard walks one booking from first step to confirmation. "b" steps
// back, "q" abandons the wizard (the pending record, if any, survives for
// the resume flow).
func (a *App) runWizard(ctx context.Context, svc booking.Service) {
	m := wizard.NewMachine(svc, wizard.Deps{
		Bookings: a.deps.Bookings,
		Payments: a.deps.Payments,
		Checkout: a.deps.Checkout,
		Pending:  a.deps.Pending,
		Clock:    a.deps.Clock,
		Logger:   a.deps.Logger,
	})

	offer, err := m.Start(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "could not start booking:", err)
		return
	}
	if offer != nil && !a.answerResumeOffer(ctx, m, offer) {
		return
	}

	for {
		step := m.Current()
		fmt.Fprintf(a.out, "\n-- %s --\n", m.Flow().Label(step))
		if msg := m.LastError(); msg != "" {
			fmt.Fprintln(a.out, "! "+msg)
		}

		var done, quit bool
		switch step {
		case wizard.StepDate:
			quit = a.stepDate(ctx, m)
		case wizard.StepTime:
			quit = a.stepTime(ctx, m)
		case wizard.StepDuration:
			quit = a.stepDuration(m, svc)
		case wizard.StepDetails:
			quit = a.stepDetails(ctx, m)
		case wizard.StepReview:
			quit = a.stepReview(ctx, m)
		case wizard.StepPayment:
			quit = a.stepPayment(ctx, m)
		case wizard.StepConfirmed:
			a.printSummary(m)
			done = true
		}
		if done || quit {
			return
		}
	}
}

func (a *App) answerResumeOffer(ctx context.Context, m *wizard.Machine, offer *wizard.ResumeOffer) bool {
	fmt.Fprintf(a.out, "\nYou have an unpaid booking for %s", offer.ServiceTitle)
	if offer.TimeSlot != "" && offer.TimeSlot != "00:00" {
		fmt.Fprintf(a.out, " on %s at %s", offer.Date, offer.TimeSlot)
	}
	fmt.Fprintf(a.out, " (₹%d).\n", offer.PriceINR)

	answer, ok := a.readLine("Resume payment? [y = resume / n = start fresh]: ")
	if !ok {
		return false
	}
	if answer == "y" || answer == "Y" {
		if err := m.AcceptResume(); err != nil {
			fmt.Fprintln(a.out, "resume failed:", err)
			return false
		}
		return true
	}
	if err := m.StartFresh(ctx); err != nil {
		fmt.Fprintln(a.out, "could not discard previous booking:", err)
	}
	return true
}

func (a *App) stepDate(ctx context.Context, m *wizard.Machine) (quit bool) {
	cal := availability.NewCalendar(a.deps.Resolver, a.deps.Clock)
	view := cal.Load(ctx)

	for {
		a.printMonth(view)
		line, ok := a.readLine("date [YYYY-MM-DD, n = next month, p = prev, q = quit]: ")
		if !ok || line == "q" {
			return true
		}
		switch line {
		case "n":
			view = cal.NextMonth(ctx)
		case "p":
			view = cal.PrevMonth(ctx)
		default:
			if err := cal.Select(line); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			if err := m.SelectDate(cal.Selected()); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			if err := m.Next(); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			return false
		}
	}
}

func (a *App) printMonth(view availability.MonthView) {
	fmt.Fprintf(a.out, "\n%s %d\n", view.Month, view.Year)
	if view.Err != nil {
		fmt.Fprintln(a.out, "availability is unreachable right now; try again shortly")
		return
	}
	open := 0
	for _, cell := range view.Days {
		if cell.Selectable {
			fmt.Fprintf(a.out, "  %s\n", cell.Date)
			open++
		}
	}
	if open == 0 {
		fmt.Fprintln(a.out, "  no open dates this month")
	}
}

func (a *App) stepTime(ctx context.Context, m *wizard.Machine) (quit bool) {
	result := a.deps.Resolver.SlotsFor(ctx, m.Draft().Date)
	if result.Err != nil {
		fmt.Fprintln(a.out, "could not load slots; going back to the date step")
		_ = m.Back()
		return false
	}
	if len(result.Slots) == 0 {
		fmt.Fprintln(a.out, "no open slots on", result.Date)
		_ = m.Back()
		return false
	}

	fmt.Fprintf(a.out, "\nSlots on %s:\n", result.Date)
	for i, slot := range result.Slots {
		fmt.Fprintf(a.out, "%2d. %s - %s\n", i+1, slot.Start, slot.End)
	}

	for {
		line, ok := a.readLine("slot number [b = back, q = quit]: ")
		if !ok || line == "q" {
			return true
		}
		if line == "b" {
			_ = m.Back()
			return false
		}
		var idx int
		if _, err := fmt.Sscanf(line, "%d", &idx); err != nil || idx < 1 || idx > len(result.Slots) {
			fmt.Fprintln(a.out, "no such slot")
			continue
		}
		if err := m.SelectSlot(result.Slots[idx-1].Start); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if err := m.Next(); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return false
	}
}

func (a *App) stepDuration(m *wizard.Machine, svc booking.Service) (quit bool) {
	options := booking.DurationsFor(svc.Slug)
	fmt.Fprintln(a.out, "\nDuration:")
	for i, opt := range options {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, opt.Label)
	}

	for {
		line, ok := a.readLine("duration number [b = back, q = quit]: ")
		if !ok || line == "q" {
			return true
		}
		if line == "b" {
			_ = m.Back()
			return false
		}
		var idx int
		if _, err := fmt.Sscanf(line, "%d", &idx); err != nil || idx < 1 || idx > len(options) {
			fmt.Fprintln(a.out, "no such option")
			continue
		}
		if err := m.SelectDuration(options[idx-1].Minutes); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if err := m.Next(); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return false
	}
}

func (a *App) stepDetails(ctx context.Context, m *wizard.Machine) (quit bool) {
	fmt.Fprintln(a.out, "\nYour details:")
	name, ok := a.readLine("full name: ")
	if !ok {
		return true
	}
	email, ok := a.readLine("email: ")
	if !ok {
		return true
	}
	phone, ok := a.readLine("phone: ")
	if !ok {
		return true
	}
	notes, ok := a.readLine("your question: ")
	if !ok {
		return true
	}
	if err := m.SetContact(name, email, phone, notes); err != nil {
		fmt.Fprintln(a.out, err)
		return false
	}

	if quit := a.readDateOfBirth(m); quit {
		return true
	}
	if quit := a.readTimeOfBirth(m); quit {
		return true
	}
	if quit := a.readPlaceOfBirth(ctx, m); quit {
		return true
	}

	if err := m.Next(); err != nil {
		fmt.Fprintln(a.out, "details incomplete:", err)
	}
	return false
}

func (a *App) readDateOfBirth(m *wizard.Machine) (quit bool) {
	cal := birthinput.NewDOBCalendar(a.deps.Clock, "")
	for {
		line, ok := a.readLine("date of birth [YYYY-MM-DD]: ")
		if !ok {
			return true
		}
		t, err := time.ParseInLocation("2006-01-02", line, time.Local)
		if err != nil {
			fmt.Fprintln(a.out, "not a date")
			continue
		}
		cal.SetYear(t.Year())
		cal.SetMonth(t.Month())
		iso, err := cal.Select(t.Day())
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if err := m.SetDateOfBirth(iso); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return false
	}
}

func (a *App) readTimeOfBirth(m *wizard.Machine) (quit bool) {
	picker := birthinput.NewTimeOfBirthPicker()
	for {
		line, ok := a.readLine("time of birth [HH:MM AM|PM, empty = unknown]: ")
		if !ok {
			return true
		}
		if line == "" {
			picker.SetUnknown(true)
		} else {
			var hour, minute int
			var period string
			if _, err := fmt.Sscanf(line, "%d:%d %s", &hour, &minute, &period); err != nil {
				fmt.Fprintln(a.out, "use HH:MM AM or HH:MM PM")
				continue
			}
			if err := picker.SetTime(hour, minute, booking.Period(period)); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
		}
		if err := m.SetBirthTime(picker.Snapshot()); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return false
	}
}

func (a *App) readPlaceOfBirth(ctx context.Context, m *wizard.Machine) (quit bool) {
	if a.deps.Places == nil {
		// Degraded mode: free text, no coordinates.
		line, ok := a.readLine("place of birth: ")
		if !ok {
			return true
		}
		if err := m.SetPlaceOfBirth(line, 0, 0); err != nil {
			fmt.Fprintln(a.out, err)
		}
		return false
	}

	suggestionCh := make(chan []places.Prediction, 1)
	ac := birthinput.NewPlaceAutocomplete(a.deps.Places, birthinput.PlaceAutocompleteConfig{
		Debounce: time.Duration(a.deps.PlacesDebounce.Debounce) * time.Millisecond,
		MinChars: a.deps.PlacesDebounce.MinChars,
	}, a.deps.Logger, func(predictions []places.Prediction) {
		select {
		case suggestionCh <- predictions:
		default:
		}
	})
	defer ac.Close()

	for {
		line, ok := a.readLine("place of birth (city): ")
		if !ok {
			return true
		}
		ac.SetInput(line)

		var suggestions []places.Prediction
		select {
		case suggestions = <-suggestionCh:
		case <-time.After(15 * time.Second):
		case <-ctx.Done():
			return true
		}
		if len(suggestions) == 0 {
			fmt.Fprintln(a.out, "no matches, try again")
			continue
		}
		for i, s := range suggestions {
			fmt.Fprintf(a.out, "%2d. %s\n", i+1, s.Description)
		}

		idx, ok := a.readInt("pick a city: ")
		if !ok {
			continue
		}
		selection, err := ac.Select(ctx, idx-1)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if err := m.SetPlaceOfBirth(selection.Name, selection.Latitude, selection.Longitude); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return false
	}
}

func (a *App) stepReview(ctx context.Context, m *wizard.Machine) (quit bool) {
	draft := m.Draft()
	fmt.Fprintln(a.out, "\nReview:")
	fmt.Fprintf(a.out, "  service: %s\n", draft.ServiceTitle)
	if m.Flow().Kind() == booking.KindScheduled {
		fmt.Fprintf(a.out, "  when:    %s %s (%d min)\n", draft.Date, draft.TimeSlot, draft.DurationMinutes)
	}
	fmt.Fprintf(a.out, "  name:    %s <%s> %s\n", draft.UserName, draft.UserEmail, draft.UserPhone)
	fmt.Fprintf(a.out, "  born:    %s, %s\n", draft.DateOfBirth, draft.PlaceOfBirth)

	for {
		line, ok := a.readLine("confirm and proceed to payment? [y / b = back / q = quit]: ")
		if !ok || line == "q" {
			return true
		}
		if line == "b" {
			_ = m.Back()
			return false
		}
		if line != "y" && line != "Y" {
			continue
		}
		if err := m.ProceedToPayment(ctx); err != nil {
			// The message also renders at the top of the next iteration.
			return false
		}
		return false
	}
}

func (a *App) stepPayment(ctx context.Context, m *wizard.Machine) (quit bool) {
	fmt.Fprintf(a.out, "\nBooking %s created. Amount due: ₹%d\n", m.BookingID(), m.PriceINR())
	line, ok := a.readLine("pay now? [y / q = quit, you can resume later]: ")
	if !ok || line == "q" {
		return true
	}
	if line != "y" && line != "Y" {
		return false
	}
	if err := m.Pay(ctx); err != nil {
		fmt.Fprintln(a.out, "payment failed:", err)
	}
	return false
}

func (a *App) printSummary(m *wizard.Machine) {
	summary, err := m.Summary()
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fmt.Fprintln(a.out, "\nBooking confirmed!")
	fmt.Fprintf(a.out, "  id:      %s\n", summary.BookingID)
	fmt.Fprintf(a.out, "  service: %s\n", summary.ServiceTitle)
	if summary.Scheduled {
		fmt.Fprintf(a.out, "  when:    %s %s (%d min)\n", summary.Date, summary.TimeSlot, summary.DurationMinutes)
	}
	fmt.Fprintf(a.out, "  paid:    ₹%d\n", summary.AmountPaidINR)
}

package wizard

import (
	"context"

	"github.com/jinzhu/copier"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/domain/booking"
	"vedicjivan-booking/internal/pkg/errs"
)

// ResumeOffer is the fork presented when an abandoned, still-valid booking
// exists for this service: resume straight to payment, or start fresh.
type ResumeOffer struct {
	BookingID    string
	ServiceTitle string
	Date         string
	TimeSlot     string
	PriceINR     int

	snapshot *api.Booking
}

// Start runs the mount-time resume check. A nil offer means a fresh wizard;
// a non-nil offer must be answered with AcceptResume or StartFresh before
// the wizard advances.
func (m *Machine) Start(ctx context.Context) (*ResumeOffer, error) {
	rec, err := m.deps.Pending.Find(ctx, m.service.Slug)
	if err != nil {
		// Unreadable storage is treated like no record; resumability is a
		// convenience, not a requirement.
		m.deps.Logger.Warn("pending booking lookup failed", "service", m.service.Slug, "error", err)
		return nil, nil
	}
	if rec == nil {
		return nil, nil
	}

	snapshot, err := m.deps.Bookings.Resume(ctx, rec.BookingID)
	if err != nil {
		// Not found, expired or already completed: the record is stale.
		// Discard silently and proceed fresh; the user never sees this.
		m.deps.Logger.Info("pending booking no longer resumable, discarding",
			"booking_id", rec.BookingID, "error", err)
		if delErr := m.deps.Pending.Delete(ctx, m.service.Slug); delErr != nil {
			m.deps.Logger.Warn("failed to discard stale pending record", "error", delErr)
		}
		return nil, nil
	}

	offer := &ResumeOffer{
		BookingID:    snapshot.ID,
		ServiceTitle: snapshot.ServiceTitle,
		Date:         snapshot.Date,
		TimeSlot:     snapshot.TimeSlot,
		PriceINR:     snapshot.PriceINR,
		snapshot:     snapshot,
	}

	m.mu.Lock()
	m.offer = offer
	m.mu.Unlock()
	return offer, nil
}

// HasPendingOffer reports whether the resume prompt is still unanswered.
func (m *Machine) HasPendingOffer() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offer != nil
}

// AcceptResume repopulates the draft from the server's booking snapshot and
// jumps directly to the payment step.
func (m *Machine) AcceptResume() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.offer == nil {
		return errs.New("no resume offer to accept")
	}
	snapshot := m.offer.snapshot

	draft := booking.NewDraft(m.service)
	// Field names line up between the server projection and the draft;
	// copier fills everything except the birth-time composite.
	if err := copier.Copy(&draft, snapshot); err != nil {
		return errs.Wrap(err, "failed to restore draft from booking snapshot")
	}
	draft.BirthTime = birthTimeFromSnapshot(snapshot)

	m.draft = draft
	m.bookingID = snapshot.ID
	m.priceINR = snapshot.PriceINR
	m.stepIdx = m.flow.Index(StepPayment)
	m.epoch++
	m.lastError = ""
	m.offer = nil
	return nil
}

// StartFresh discards the pending record and begins at the first step with
// an empty draft.
func (m *Machine) StartFresh(ctx context.Context) error {
	m.mu.Lock()
	if m.offer == nil {
		m.mu.Unlock()
		return errs.New("no resume offer to decline")
	}
	m.offer = nil
	m.draft = booking.NewDraft(m.service)
	m.bookingID = ""
	m.priceINR = 0
	m.stepIdx = 0
	m.epoch++
	m.lastError = ""
	m.mu.Unlock()

	if err := m.deps.Pending.Delete(ctx, m.service.Slug); err != nil {
		return errs.Wrap(err, "failed to delete pending booking record")
	}
	return nil
}

func birthTimeFromSnapshot(snapshot *api.Booking) booking.BirthTime {
	if snapshot.BirthTimeUnknown || snapshot.TimeOfBirth == nil {
		return booking.NewBirthTime().WithUnknown(true)
	}
	parsed, err := booking.ParseBirthTime(*snapshot.TimeOfBirth)
	if err != nil {
		// A snapshot the server produced should always parse; degrade to
		// unknown rather than refusing the resume.
		return booking.NewBirthTime().WithUnknown(true)
	}
	return parsed
}

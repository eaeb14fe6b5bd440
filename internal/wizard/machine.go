// Package wizard is the booking wizard state machine: step sequencing per
// service kind, step-local preconditions, booking creation, payment
// initiation and the resume-pending-booking flow.
package wizard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/domain/booking"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/session"
)

const (
	// Sentinel scheduling values for report services.
	reportTimeSlot = "00:00"
	reportDuration = 0

	verifyTimeout = 30 * time.Second
)

const verificationFailedMsg = "Payment verification failed. Please contact support."

type Deps struct {
	Bookings BookingsPort
	Payments PaymentsPort
	Checkout *checkout.Loader
	Pending  session.PendingStore
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Machine is one wizard instance for one service. All methods are safe for
// the single-UI-thread-plus-async-callback pattern: mutations take the lock,
// navigation is refused while a create or pay call is in flight, and results
// arriving after the step has moved on are discarded (epoch guard).
type Machine struct {
	deps    Deps
	service booking.Service
	flow    Flow

	mu        sync.Mutex
	stepIdx   int
	epoch     uint64
	draft     booking.Draft
	bookingID string
	priceINR  int
	busy      bool
	lastError string
	offer     *ResumeOffer
}

func NewMachine(service booking.Service, deps Deps) *Machine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	return &Machine{
		deps:    deps,
		service: service,
		flow:    FlowFor(service.Slug),
		draft:   booking.NewDraft(service),
	}
}

func (m *Machine) Flow() Flow { return m.flow }

func (m *Machine) Current() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flow.steps[m.stepIdx]
}

func (m *Machine) Draft() booking.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func (m *Machine) BookingID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookingID
}

func (m *Machine) PriceINR() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.priceINR
}

// LastError is the inline message rendered above the step content; empty
// when the last operation succeeded.
func (m *Machine) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

// Busy reports an in-flight create/pay call; the triggering control must be
// disabled for the duration (booking creation is not idempotent).
func (m *Machine) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// CanAdvance reports whether the current step's precondition holds.
func (m *Machine) CanAdvance() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canAdvanceLocked()
}

func (m *Machine) canAdvanceLocked() bool {
	switch m.flow.steps[m.stepIdx] {
	case StepDate:
		return m.draft.HasDate()
	case StepTime:
		return m.draft.HasSlot()
	case StepDuration:
		return m.draft.HasDuration()
	case StepDetails:
		return m.draft.DetailsComplete()
	default:
		return false
	}
}

// Next advances past the data-collection steps. Review advances through
// ProceedToPayment, payment through the checkout callback.
func (m *Machine) Next() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.offer != nil {
		return errs.Mark(errs.New("resume prompt must be answered first"), errs.ErrWrongStep)
	}
	if m.busy {
		return errs.ErrOperationInFlight
	}

	step := m.flow.steps[m.stepIdx]
	switch step {
	case StepReview, StepPayment, StepConfirmed:
		return errs.Mark(errs.Newf("cannot advance from %s step with Next", step), errs.ErrNoNextStep)
	}
	if !m.canAdvanceLocked() {
		return errs.ErrStepLocked
	}

	m.stepIdx++
	m.epoch++
	m.lastError = ""
	return nil
}

// Back moves to the preceding step, preserving all entered data. The first
// step has no Back; confirmed is terminal.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return errs.ErrOperationInFlight
	}
	if m.flow.steps[m.stepIdx] == StepConfirmed {
		return errs.Mark(errs.New("confirmed is terminal"), errs.ErrNoPreviousStep)
	}
	if m.stepIdx == 0 {
		return errs.ErrNoPreviousStep
	}

	m.stepIdx--
	m.epoch++
	m.lastError = ""
	return nil
}

func (m *Machine) requireStep(step Step) error {
	if m.flow.steps[m.stepIdx] != step {
		return errs.Mark(errs.Newf("operation requires the %s step", step), errs.ErrWrongStep)
	}
	return nil
}

// SelectDate picks the booking date; the previously chosen slot no longer
// applies to the new date and is cleared.
func (m *Machine) SelectDate(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDate); err != nil {
		return err
	}
	m.draft.Date = date
	m.draft.TimeSlot = ""
	return nil
}

func (m *Machine) SelectSlot(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepTime); err != nil {
		return err
	}
	m.draft.TimeSlot = slot
	return nil
}

func (m *Machine) SelectDuration(minutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDuration); err != nil {
		return err
	}
	for _, opt := range booking.DurationsFor(m.service.Slug) {
		if opt.Minutes == minutes {
			m.draft.DurationMinutes = minutes
			return nil
		}
	}
	return errs.Newf("%d minutes is not offered for %s", minutes, m.service.Slug)
}

func (m *Machine) SetContact(name, email, phone, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.UserName = name
	m.draft.UserEmail = email
	m.draft.UserPhone = phone
	m.draft.Notes = notes
	return nil
}

func (m *Machine) SetDateOfBirth(isoDate string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.DateOfBirth = isoDate
	return nil
}

func (m *Machine) SetBirthTime(t booking.BirthTime) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.BirthTime = t
	return nil
}

func (m *Machine) SetPlaceOfBirth(name string, latitude, longitude float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.PlaceOfBirth = name
	m.draft.BirthLatitude = latitude
	m.draft.BirthLongitude = longitude
	return nil
}

// ProceedToPayment submits the draft as a booking. On success the wizard
// holds the booking id and server price, records the pending booking, and
// moves to the payment step; on failure the error renders inline and the
// wizard stays on review.
func (m *Machine) ProceedToPayment(ctx context.Context) error {
	m.mu.Lock()
	if err := m.requireStep(StepReview); err != nil {
		m.mu.Unlock()
		return err
	}
	if m.offer != nil {
		m.mu.Unlock()
		return errs.Mark(errs.New("resume prompt must be answered first"), errs.ErrWrongStep)
	}
	if m.busy {
		m.mu.Unlock()
		return errs.ErrOperationInFlight
	}
	m.busy = true
	m.lastError = ""
	req := m.buildRequestLocked()
	m.mu.Unlock()

	created, err := m.deps.Bookings.Create(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false

	if err != nil {
		// Slot conflicts and validation rejections land here too; all of them
		// are displayable errors, not crashes.
		m.lastError = err.Error()
		return err
	}

	m.bookingID = created.ID
	m.priceINR = created.PriceINR
	m.recordPendingLocked(ctx, created.ID)
	m.stepIdx = m.flow.Index(StepPayment)
	m.epoch++
	return nil
}

func (m *Machine) buildRequestLocked() api.CreateBookingRequest {
	req := api.CreateBookingRequest{
		ServiceSlug:      m.draft.ServiceSlug,
		ServiceTitle:     m.draft.ServiceTitle,
		Date:             m.draft.Date,
		TimeSlot:         m.draft.TimeSlot,
		DurationMinutes:  m.draft.DurationMinutes,
		UserName:         m.draft.UserName,
		UserEmail:        m.draft.UserEmail,
		UserPhone:        m.draft.UserPhone,
		Notes:            m.draft.Notes,
		DateOfBirth:      m.draft.DateOfBirth,
		TimeOfBirth:      m.draft.BirthTime.Value(),
		BirthTimeUnknown: m.draft.BirthTime.Unknown(),
		PlaceOfBirth:     m.draft.PlaceOfBirth,
		BirthLatitude:    m.draft.BirthLatitude,
		BirthLongitude:   m.draft.BirthLongitude,
	}

	if m.flow.kind == booking.KindReport {
		req.Date = clock.Today(m.deps.Clock).Format("2006-01-02")
		req.TimeSlot = reportTimeSlot
		req.DurationMinutes = reportDuration
	}
	return req
}

func (m *Machine) recordPendingLocked(ctx context.Context, bookingID string) {
	rec := session.PendingBooking{
		BookingID:   bookingID,
		ServiceSlug: m.service.Slug,
		CreatedAt:   m.deps.Clock.Now(),
	}
	if err := m.deps.Pending.Save(ctx, rec); err != nil {
		// Losing the record only loses resumability, not the booking.
		m.deps.Logger.Warn("failed to record pending booking", "booking_id", bookingID, "error", err)
	}
}

// Pay creates the payment order and opens the checkout UI. The provider's
// success callback arrives out of band; verification and the transition to
// confirmed happen there.
func (m *Machine) Pay(ctx context.Context) error {
	m.mu.Lock()
	if err := m.requireStep(StepPayment); err != nil {
		m.mu.Unlock()
		return err
	}
	if m.busy {
		m.mu.Unlock()
		return errs.ErrOperationInFlight
	}
	m.busy = true
	m.lastError = ""
	bookingID := m.bookingID
	amount := m.priceINR
	prefill := checkout.Prefill{
		Name:    m.draft.UserName,
		Email:   m.draft.UserEmail,
		Contact: m.draft.UserPhone,
	}
	openedAt := m.epoch
	m.mu.Unlock()

	fail := func(err error) error {
		m.mu.Lock()
		m.busy = false
		if m.epoch == openedAt {
			m.lastError = err.Error()
		}
		m.mu.Unlock()
		return err
	}

	order, err := m.deps.Payments.CreateOrder(ctx, api.CreateOrderRequest{
		BookingID: bookingID,
		AmountINR: amount,
	})
	if err != nil {
		return fail(err)
	}

	provider, err := m.deps.Checkout.Get(ctx)
	if err != nil {
		return fail(err)
	}

	// A late callback from an earlier checkout may have confirmed the booking
	// while the order was being created; opening another checkout then would
	// invite a double charge.
	m.mu.Lock()
	if m.epoch != openedAt || m.flow.steps[m.stepIdx] != StepPayment {
		m.busy = false
		m.mu.Unlock()
		m.deps.Logger.Info("discarding payment order created after the step changed", "order_id", order.OrderID)
		return nil
	}
	m.mu.Unlock()

	err = provider.Open(ctx,
		checkout.Order{
			OrderID:     order.OrderID,
			Amount:      order.Amount,
			Currency:    order.Currency,
			KeyID:       order.KeyID,
			Description: m.service.Title,
		},
		prefill,
		func(result checkout.Result) {
			m.completePayment(result, openedAt)
		},
	)
	if err != nil {
		return fail(err)
	}

	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
	return nil
}

// completePayment handles the provider's success callback: verify with the
// backend, then reach the terminal confirmed state. A callback that arrives
// after the wizard moved off the payment step is discarded.
func (m *Machine) completePayment(result checkout.Result, openedAt uint64) {
	m.mu.Lock()
	if m.epoch != openedAt || m.flow.steps[m.stepIdx] != StepPayment {
		m.mu.Unlock()
		m.deps.Logger.Info("discarding stale checkout callback", "order_id", result.OrderID)
		return
	}
	bookingID := m.bookingID
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	err := m.deps.Payments.Verify(ctx, api.VerifyPaymentRequest{
		RazorpayOrderID:   result.OrderID,
		RazorpayPaymentID: result.PaymentID,
		RazorpaySignature: result.Signature,
		BookingID:         bookingID,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.lastError = verificationFailedMsg
		m.deps.Logger.Error("payment verification failed", "booking_id", bookingID, "error", err)
		return
	}

	m.stepIdx = m.flow.Index(StepConfirmed)
	m.epoch++
	m.lastError = ""

	// Paid means no longer pending.
	if err := m.deps.Pending.Delete(ctx, m.service.Slug); err != nil {
		m.deps.Logger.Warn("failed to clear pending booking record", "service", m.service.Slug, "error", err)
	}
}

// Summary renders the terminal confirmation.
type Summary struct {
	BookingID       string
	ServiceTitle    string
	Date            string
	TimeSlot        string
	DurationMinutes int
	AmountPaidINR   int
	Scheduled       bool
}

func (m *Machine) Summary() (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flow.steps[m.stepIdx] != StepConfirmed {
		return Summary{}, errs.Mark(errs.New("booking not confirmed yet"), errs.ErrWrongStep)
	}
	return Summary{
		BookingID:       m.bookingID,
		ServiceTitle:    m.service.Title,
		Date:            m.draft.Date,
		TimeSlot:        m.draft.TimeSlot,
		DurationMinutes: m.draft.DurationMinutes,
		AmountPaidINR:   m.priceINR,
		Scheduled:       m.flow.kind == booking.KindScheduled,
	}, nil
}

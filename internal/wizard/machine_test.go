//go:build unit

package wizard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/domain/booking"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/session"
	"vedicjivan-booking/internal/storage"
	"vedicjivan-booking/internal/wizard"
	checkoutmock "vedicjivan-booking/tests/mock/checkout"
	wizardmock "vedicjivan-booking/tests/mock/wizard"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MachineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *wizardmock.MockBookingsPort
	payments *wizardmock.MockPaymentsPort
	provider *checkoutmock.MockProvider
	pending  session.PendingStore
	clk      *clock.MockClock
}

func (s *MachineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = wizardmock.NewMockBookingsPort(s.ctrl)
	s.payments = wizardmock.NewMockPaymentsPort(s.ctrl)
	s.provider = checkoutmock.NewMockProvider(s.ctrl)
	s.pending = session.NewPendingStore(storage.NewMemoryKV())
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local))
}

func (s *MachineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}

func (s *MachineTestSuite) newMachine(slug string) *wizard.Machine {
	svc, ok := booking.BySlug(slug)
	s.Require().True(ok)
	return wizard.NewMachine(svc, wizard.Deps{
		Bookings: s.bookings,
		Payments: s.payments,
		Checkout: checkout.NewLoader(func(context.Context) (checkout.Provider, error) {
			return s.provider, nil
		}),
		Pending: s.pending,
		Clock:   s.clk,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// advanceToReview walks a scheduled-flow machine through the data steps.
func (s *MachineTestSuite) advanceToReview(m *wizard.Machine) {
	s.Require().NoError(m.SelectDate("2026-09-15"))
	s.Require().NoError(m.Next())
	s.Require().NoError(m.SelectSlot("10:00"))
	s.Require().NoError(m.Next())
	s.Require().NoError(m.SelectDuration(30))
	s.Require().NoError(m.Next())
	s.fillDetails(m)
	s.Require().NoError(m.Next())
	s.Require().Equal(wizard.StepReview, m.Current())
}

func (s *MachineTestSuite) fillDetails(m *wizard.Machine) {
	s.Require().NoError(m.SetContact("Asha Sharma", "asha@example.com", "+91 98765 43210", "Career guidance"))
	s.Require().NoError(m.SetDateOfBirth("1992-03-21"))
	bt, err := booking.NewBirthTime().WithTime(10, 30, booking.AM)
	s.Require().NoError(err)
	s.Require().NoError(m.SetBirthTime(bt))
	s.Require().NoError(m.SetPlaceOfBirth("Jaipur, Rajasthan, India", 26.9124, 75.7873))
}

func (s *MachineTestSuite) TestScheduledFlowStepOrder() {
	m := s.newMachine("call-consultation")
	s.Equal(wizard.StepDate, m.Current())
	s.Equal([]wizard.Step{
		wizard.StepDate, wizard.StepTime, wizard.StepDuration,
		wizard.StepDetails, wizard.StepReview, wizard.StepPayment, wizard.StepConfirmed,
	}, m.Flow().Steps())
}

func (s *MachineTestSuite) TestReportFlowStartsAtDetails() {
	m := s.newMachine("premium-kundli")
	s.Equal(wizard.StepDetails, m.Current())
	s.Equal(booking.KindReport, m.Flow().Kind())
}

func (s *MachineTestSuite) TestStepLabelsPerFlow() {
	scheduled := s.newMachine("call-consultation")
	s.Equal("Date", scheduled.Flow().Label(wizard.StepDate))
	s.Equal("Details", scheduled.Flow().Label(wizard.StepDetails))

	// Report flows enter at details, so the indicator uses the long heading.
	report := s.newMachine("premium-kundli")
	s.Equal("Your Details", report.Flow().Label(wizard.StepDetails))
}

func (s *MachineTestSuite) TestNextBlockedUntilStepComplete() {
	m := s.newMachine("call-consultation")

	err := m.Next()
	s.ErrorIs(err, errs.ErrStepLocked)

	s.Require().NoError(m.SelectDate("2026-09-15"))
	s.NoError(m.Next())
	s.Equal(wizard.StepTime, m.Current())
}

func (s *MachineTestSuite) TestChangingDateClearsSlot() {
	m := s.newMachine("call-consultation")
	s.Require().NoError(m.SelectDate("2026-09-15"))
	s.Require().NoError(m.Next())
	s.Require().NoError(m.SelectSlot("10:00"))

	s.Require().NoError(m.Back())
	s.Require().NoError(m.SelectDate("2026-09-16"))
	s.Empty(m.Draft().TimeSlot)
}

func (s *MachineTestSuite) TestBackPreservesEnteredData() {
	m := s.newMachine("call-consultation")
	s.Require().NoError(m.SelectDate("2026-09-15"))
	s.Require().NoError(m.Next())
	s.Require().NoError(m.SelectSlot("10:00"))

	s.Require().NoError(m.Back())
	s.Equal("2026-09-15", m.Draft().Date)
	s.Equal("10:00", m.Draft().TimeSlot)

	err := m.Back()
	s.ErrorIs(err, errs.ErrNoPreviousStep)
}

func (s *MachineTestSuite) TestOperationsAreStepGated() {
	m := s.newMachine("call-consultation")

	err := m.SelectSlot("10:00")
	s.ErrorIs(err, errs.ErrWrongStep)

	err = m.SetContact("a", "b", "c", "d")
	s.ErrorIs(err, errs.ErrWrongStep)
}

func (s *MachineTestSuite) TestUnofferedDurationRejected() {
	m := s.newMachine("call-consultation")
	s.Require().NoError(m.SelectDate("2026-09-15"))
	s.Require().NoError(m.Next())
	s.Require().NoError(m.SelectSlot("10:00"))
	s.Require().NoError(m.Next())

	s.Error(m.SelectDuration(90))
	s.NoError(m.SelectDuration(45))
}

func (s *MachineTestSuite) TestProceedToPaymentCreatesBookingAndRecordsPending() {
	m := s.newMachine("call-consultation")
	s.advanceToReview(m)

	created := &api.Booking{ID: "bk_42", PriceINR: 1999}
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.CreateBookingRequest) (*api.Booking, error) {
			s.Equal("call-consultation", req.ServiceSlug)
			s.Equal("2026-09-15", req.Date)
			s.Equal("10:00", req.TimeSlot)
			s.Equal(30, req.DurationMinutes)
			s.Require().NotNil(req.TimeOfBirth)
			s.Equal("10:30 AM", *req.TimeOfBirth)
			return created, nil
		})

	s.Require().NoError(m.ProceedToPayment(context.Background()))
	s.Equal(wizard.StepPayment, m.Current())
	s.Equal("bk_42", m.BookingID())
	s.Equal(1999, m.PriceINR())
	s.Empty(m.LastError())

	rec, err := s.pending.Find(context.Background(), "call-consultation")
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Equal("bk_42", rec.BookingID)
}

func (s *MachineTestSuite) TestCreateFailureStaysOnReview() {
	m := s.newMachine("call-consultation")
	s.advanceToReview(m)

	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &api.Error{Status: 409, Detail: "Slot already booked"})

	err := m.ProceedToPayment(context.Background())
	s.Error(err)
	s.Equal(wizard.StepReview, m.Current())
	s.Equal("Slot already booked", m.LastError())

	rec, findErr := s.pending.Find(context.Background(), "call-consultation")
	s.Require().NoError(findErr)
	s.Nil(rec)
}

func (s *MachineTestSuite) TestReportBookingCarriesSentinelSchedule() {
	m := s.newMachine("numerology-report")
	s.fillDetails(m)
	s.Require().NoError(m.Next())
	s.Require().Equal(wizard.StepReview, m.Current())

	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.CreateBookingRequest) (*api.Booking, error) {
			s.Equal("2026-09-01", req.Date)
			s.Equal("00:00", req.TimeSlot)
			s.Equal(0, req.DurationMinutes)
			return &api.Booking{ID: "bk_r1", PriceINR: 1499}, nil
		})

	s.Require().NoError(m.ProceedToPayment(context.Background()))
	s.Equal(wizard.StepPayment, m.Current())
}

func (s *MachineTestSuite) TestBackRefusedWhileCreateInFlight() {
	m := s.newMachine("call-consultation")
	s.advanceToReview(m)

	createStarted := make(chan struct{})
	release := make(chan struct{})
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, api.CreateBookingRequest) (*api.Booking, error) {
			close(createStarted)
			<-release
			return &api.Booking{ID: "bk_42", PriceINR: 1999}, nil
		})

	done := make(chan error, 1)
	go func() { done <- m.ProceedToPayment(context.Background()) }()
	<-createStarted

	// Navigating away mid-create would let the result land on the wrong step.
	s.ErrorIs(m.Back(), errs.ErrOperationInFlight)
	s.Equal(wizard.StepReview, m.Current())

	close(release)
	s.Require().NoError(<-done)
	s.Equal(wizard.StepPayment, m.Current())
	s.Equal("bk_42", m.BookingID())
}

func (s *MachineTestSuite) payReady() *wizard.Machine {
	m := s.newMachine("call-consultation")
	s.advanceToReview(m)
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&api.Booking{ID: "bk_42", PriceINR: 1999}, nil)
	s.Require().NoError(m.ProceedToPayment(context.Background()))
	return m
}

func (s *MachineTestSuite) TestPaymentSuccessConfirmsBooking() {
	m := s.payReady()

	s.payments.EXPECT().CreateOrder(gomock.Any(), api.CreateOrderRequest{BookingID: "bk_42", AmountINR: 1999}).
		Return(&api.PaymentOrder{OrderID: "order_1", Amount: 199900, Currency: "INR", KeyID: "rzp_test"}, nil)
	s.provider.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order checkout.Order, _ checkout.Prefill, onSuccess func(checkout.Result)) error {
			onSuccess(checkout.Result{OrderID: order.OrderID, PaymentID: "pay_1", Signature: "sig_1"})
			return nil
		})
	s.payments.EXPECT().Verify(gomock.Any(), api.VerifyPaymentRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig_1",
		BookingID:         "bk_42",
	}).Return(nil)

	s.Require().NoError(m.Pay(context.Background()))
	s.Equal(wizard.StepConfirmed, m.Current())

	summary, err := m.Summary()
	s.Require().NoError(err)
	s.Equal("bk_42", summary.BookingID)
	s.Equal(1999, summary.AmountPaidINR)
	s.True(summary.Scheduled)

	// Paid bookings must not resurface through the resume flow.
	rec, err := s.pending.Find(context.Background(), "call-consultation")
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *MachineTestSuite) TestVerificationFailureStaysOnPayment() {
	m := s.payReady()

	s.payments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&api.PaymentOrder{OrderID: "order_1"}, nil)
	s.provider.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order checkout.Order, _ checkout.Prefill, onSuccess func(checkout.Result)) error {
			onSuccess(checkout.Result{OrderID: order.OrderID, PaymentID: "pay_1", Signature: "bad"})
			return nil
		})
	s.payments.EXPECT().Verify(gomock.Any(), gomock.Any()).
		Return(&api.Error{Status: 400, Detail: "signature mismatch"})

	s.Require().NoError(m.Pay(context.Background()))
	s.Equal(wizard.StepPayment, m.Current())
	s.Equal("Payment verification failed. Please contact support.", m.LastError())

	_, err := m.Summary()
	s.ErrorIs(err, errs.ErrWrongStep)
}

func (s *MachineTestSuite) TestStaleCheckoutCallbackDiscarded() {
	m := s.payReady()

	var captured func(checkout.Result)
	s.payments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&api.PaymentOrder{OrderID: "order_1"}, nil)
	s.provider.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ checkout.Order, _ checkout.Prefill, onSuccess func(checkout.Result)) error {
			captured = onSuccess
			return nil
		})

	s.Require().NoError(m.Pay(context.Background()))
	s.Require().NotNil(captured)

	// Leaving the payment step invalidates the in-flight checkout. Verify is
	// never expected, so a call would fail the suite.
	s.Require().NoError(m.Back())
	captured(checkout.Result{OrderID: "order_1", PaymentID: "pay_late", Signature: "sig"})

	s.Equal(wizard.StepReview, m.Current())
}

func (s *MachineTestSuite) TestOrderCreatedAfterConfirmationIsDiscarded() {
	m := s.payReady()

	var captured func(checkout.Result)
	s.payments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&api.PaymentOrder{OrderID: "order_1"}, nil)
	s.provider.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ checkout.Order, _ checkout.Prefill, onSuccess func(checkout.Result)) error {
			captured = onSuccess
			return nil // dismissed without paying
		})
	s.Require().NoError(m.Pay(context.Background()))
	s.Require().NotNil(captured)

	// The retry's order comes back only after the first checkout's late
	// success callback has confirmed the booking. A second checkout must not
	// open for it: Open is expected exactly once, above.
	s.payments.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, api.CreateOrderRequest) (*api.PaymentOrder, error) {
			captured(checkout.Result{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"})
			return &api.PaymentOrder{OrderID: "order_2"}, nil
		})

	s.Require().NoError(m.Pay(context.Background()))
	s.Equal(wizard.StepConfirmed, m.Current())
	s.Empty(m.LastError())
}

func (s *MachineTestSuite) TestCreateOrderFailureSurfacesInline() {
	m := s.payReady()

	s.payments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, &api.Error{Status: 502, Detail: "payment gateway unavailable"})

	err := m.Pay(context.Background())
	s.Error(err)
	s.Equal(wizard.StepPayment, m.Current())
	s.Equal("payment gateway unavailable", m.LastError())
}

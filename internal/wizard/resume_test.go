//go:build unit

package wizard_test

import (
	"context"
	"time"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/session"
	"vedicjivan-booking/internal/wizard"
	"vedicjivan-booking/tests/common/builder"

	"go.uber.org/mock/gomock"
)

func (s *MachineTestSuite) savePending(bookingID, slug string) {
	s.Require().NoError(s.pending.Save(context.Background(), session.PendingBooking{
		BookingID:   bookingID,
		ServiceSlug: slug,
		CreatedAt:   s.clk.Now().Add(-time.Hour),
	}))
}

func (s *MachineTestSuite) TestStartWithoutPendingRecord() {
	m := s.newMachine("call-consultation")

	offer, err := m.Start(context.Background())
	s.Require().NoError(err)
	s.Nil(offer)
	s.Equal(wizard.StepDate, m.Current())
}

func (s *MachineTestSuite) TestStartOffersResumableBooking() {
	s.savePending("bk_42", "call-consultation")
	snapshot := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = "bk_42"
	}).BuildAPI()
	s.bookings.EXPECT().Resume(gomock.Any(), "bk_42").Return(snapshot, nil)

	m := s.newMachine("call-consultation")
	offer, err := m.Start(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(offer)
	s.Equal("bk_42", offer.BookingID)
	s.Equal("Call Consultation", offer.ServiceTitle)
	s.Equal(1999, offer.PriceINR)

	// The wizard is parked until the prompt is answered.
	err = m.Next()
	s.ErrorIs(err, errs.ErrWrongStep)
}

func (s *MachineTestSuite) TestAcceptResumeJumpsToPayment() {
	s.savePending("bk_42", "call-consultation")
	snapshot := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = "bk_42"
	}).BuildAPI()
	s.bookings.EXPECT().Resume(gomock.Any(), "bk_42").Return(snapshot, nil)

	m := s.newMachine("call-consultation")
	_, err := m.Start(context.Background())
	s.Require().NoError(err)

	s.Require().NoError(m.AcceptResume())
	s.Equal(wizard.StepPayment, m.Current())
	s.Equal("bk_42", m.BookingID())
	s.Equal(1999, m.PriceINR())

	draft := m.Draft()
	s.Equal("Asha Sharma", draft.UserName)
	s.Equal("2026-09-15", draft.Date)
	s.Equal("10:00", draft.TimeSlot)
	s.Require().NotNil(draft.BirthTime.Value())
	s.Equal("10:30 AM", *draft.BirthTime.Value())
}

func (s *MachineTestSuite) TestAcceptResumeWithUnknownBirthTime() {
	s.savePending("bk_42", "call-consultation")
	snapshot := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = "bk_42"
		b.TimeOfBirth = nil
		b.BirthTimeUnknown = true
	}).BuildAPI()
	s.bookings.EXPECT().Resume(gomock.Any(), "bk_42").Return(snapshot, nil)

	m := s.newMachine("call-consultation")
	_, err := m.Start(context.Background())
	s.Require().NoError(err)
	s.Require().NoError(m.AcceptResume())

	s.True(m.Draft().BirthTime.Unknown())
	s.Nil(m.Draft().BirthTime.Value())
}

func (s *MachineTestSuite) TestStartFreshDiscardsRecord() {
	s.savePending("bk_42", "call-consultation")
	snapshot := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = "bk_42"
	}).BuildAPI()
	s.bookings.EXPECT().Resume(gomock.Any(), "bk_42").Return(snapshot, nil)

	m := s.newMachine("call-consultation")
	_, err := m.Start(context.Background())
	s.Require().NoError(err)

	s.Require().NoError(m.StartFresh(context.Background()))
	s.Equal(wizard.StepDate, m.Current())
	s.Empty(m.Draft().UserName)
	s.Empty(m.BookingID())

	rec, err := s.pending.Find(context.Background(), "call-consultation")
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *MachineTestSuite) TestStaleRecordDiscardedSilently() {
	s.savePending("bk_gone", "call-consultation")
	s.bookings.EXPECT().Resume(gomock.Any(), "bk_gone").
		Return(nil, &api.Error{Status: 404, Detail: "Booking not found"})

	m := s.newMachine("call-consultation")
	offer, err := m.Start(context.Background())
	s.Require().NoError(err)
	s.Nil(offer)
	s.Equal(wizard.StepDate, m.Current())

	rec, err := s.pending.Find(context.Background(), "call-consultation")
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *MachineTestSuite) TestResumeAnswersRequireAnOffer() {
	m := s.newMachine("call-consultation")
	s.Error(m.AcceptResume())
	s.Error(m.StartFresh(context.Background()))
}

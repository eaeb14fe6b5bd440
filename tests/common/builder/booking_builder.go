//go:build unit

package builder

import (
	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/domain/booking"
)

// BookingBuilder produces server-side booking projections and the matching
// client drafts for wizard and resume tests.
type BookingBuilder struct {
	ID               string
	ServiceSlug      string
	ServiceTitle     string
	Date             string
	TimeSlot         string
	DurationMinutes  int
	PriceINR         int
	Status           api.BookingStatus
	UserName         string
	UserEmail        string
	UserPhone        string
	Notes            string
	DateOfBirth      string
	TimeOfBirth      *string
	BirthTimeUnknown bool
	PlaceOfBirth     string
	BirthLatitude    float64
	BirthLongitude   float64
}

func NewBookingBuilder() *BookingBuilder {
	tob := "10:30 AM"
	return &BookingBuilder{
		ID:              "bk_0001",
		ServiceSlug:     "call-consultation",
		ServiceTitle:    "Call Consultation",
		Date:            "2026-09-15",
		TimeSlot:        "10:00",
		DurationMinutes: 30,
		PriceINR:        1999,
		Status:          api.BookingPending,
		UserName:        "Asha Sharma",
		UserEmail:       "asha@example.com",
		UserPhone:       "+91 98765 43210",
		Notes:           "Career guidance",
		DateOfBirth:     "1992-03-21",
		TimeOfBirth:     &tob,
		PlaceOfBirth:    "Jaipur, Rajasthan, India",
		BirthLatitude:   26.9124,
		BirthLongitude:  75.7873,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildAPI() *api.Booking {
	return &api.Booking{
		ID:               b.ID,
		UserName:         b.UserName,
		UserEmail:        b.UserEmail,
		UserPhone:        b.UserPhone,
		ServiceSlug:      b.ServiceSlug,
		ServiceTitle:     b.ServiceTitle,
		Date:             b.Date,
		TimeSlot:         b.TimeSlot,
		DurationMinutes:  b.DurationMinutes,
		PriceINR:         b.PriceINR,
		Status:           b.Status,
		Notes:            b.Notes,
		DateOfBirth:      b.DateOfBirth,
		TimeOfBirth:      b.TimeOfBirth,
		BirthTimeUnknown: b.BirthTimeUnknown,
		PlaceOfBirth:     b.PlaceOfBirth,
		BirthLatitude:    b.BirthLatitude,
		BirthLongitude:   b.BirthLongitude,
		CreatedAt:        "2026-09-01T09:00:00Z",
	}
}

// BuildDraft is the client-side draft a completed details step would hold
// for the same booking.
func (b *BookingBuilder) BuildDraft() booking.Draft {
	svc, _ := booking.BySlug(b.ServiceSlug)
	draft := booking.NewDraft(svc)
	draft.Date = b.Date
	draft.TimeSlot = b.TimeSlot
	draft.DurationMinutes = b.DurationMinutes
	draft.UserName = b.UserName
	draft.UserEmail = b.UserEmail
	draft.UserPhone = b.UserPhone
	draft.Notes = b.Notes
	draft.DateOfBirth = b.DateOfBirth
	draft.PlaceOfBirth = b.PlaceOfBirth
	draft.BirthLatitude = b.BirthLatitude
	draft.BirthLongitude = b.BirthLongitude
	if b.BirthTimeUnknown || b.TimeOfBirth == nil {
		draft.BirthTime = booking.NewBirthTime().WithUnknown(true)
	} else {
		bt, err := booking.ParseBirthTime(*b.TimeOfBirth)
		if err == nil {
			draft.BirthTime = bt
		}
	}
	return draft
}

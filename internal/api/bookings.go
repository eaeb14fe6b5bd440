package api

import (
	"context"
	"net/http"
	"net/url"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the server-owned projection. The client never mutates it
// directly; it calls status-transition endpoints and replaces its copy.
type Booking struct {
	ID               string        `json:"id"`
	UserName         string        `json:"user_name"`
	UserEmail        string        `json:"user_email"`
	UserPhone        string        `json:"user_phone"`
	ServiceSlug      string        `json:"service_slug"`
	ServiceTitle     string        `json:"service_title"`
	Date             string        `json:"date"`
	TimeSlot         string        `json:"time_slot"`
	DurationMinutes  int           `json:"duration_minutes"`
	PriceINR         int           `json:"price_inr"`
	Status           BookingStatus `json:"status"`
	PaymentID        *string       `json:"payment_id"`
	Notes            string        `json:"notes"`
	DateOfBirth      string        `json:"date_of_birth"`
	TimeOfBirth      *string       `json:"time_of_birth"`
	BirthTimeUnknown bool          `json:"birth_time_unknown"`
	PlaceOfBirth     string        `json:"place_of_birth"`
	BirthLatitude    float64       `json:"birth_latitude"`
	BirthLongitude   float64       `json:"birth_longitude"`
	CreatedAt        string        `json:"created_at"`
}

type CreateBookingRequest struct {
	ServiceSlug      string  `json:"service_slug"`
	ServiceTitle     string  `json:"service_title"`
	Date             string  `json:"date"`
	TimeSlot         string  `json:"time_slot"`
	DurationMinutes  int     `json:"duration_minutes"`
	UserName         string  `json:"user_name"`
	UserEmail        string  `json:"user_email"`
	UserPhone        string  `json:"user_phone"`
	Notes            string  `json:"notes"`
	DateOfBirth      string  `json:"date_of_birth"`
	TimeOfBirth      *string `json:"time_of_birth"`
	BirthTimeUnknown bool    `json:"birth_time_unknown"`
	PlaceOfBirth     string  `json:"place_of_birth"`
	BirthLatitude    float64 `json:"birth_latitude"`
	BirthLongitude   float64 `json:"birth_longitude"`
}

type ListBookingsParams struct {
	Status string
	Date   string
}

type BookingsAPI struct {
	client *Client
}

func NewBookingsAPI(client *Client) *BookingsAPI {
	return &BookingsAPI{client: client}
}

func (b *BookingsAPI) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var booking Booking
	err := b.client.do(ctx, "/api/bookings", requestOptions{method: http.MethodPost, body: req}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Resume looks up an unpaid booking by id without authentication, for the
// resume-pending-booking flow.
func (b *BookingsAPI) Resume(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if err := b.client.do(ctx, "/api/bookings/"+id+"/resume", requestOptions{}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsAPI) List(ctx context.Context, token string, params ListBookingsParams) ([]Booking, error) {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Date != "" {
		query.Set("date", params.Date)
	}
	endpoint := "/api/bookings"
	if qs := query.Encode(); qs != "" {
		endpoint += "?" + qs
	}

	var bookings []Booking
	if err := b.client.do(ctx, endpoint, requestOptions{token: token}, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingsAPI) GetByID(ctx context.Context, id string, token string) (*Booking, error) {
	var booking Booking
	if err := b.client.do(ctx, "/api/bookings/"+id, requestOptions{token: token}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsAPI) Cancel(ctx context.Context, id string, token string) (*Booking, error) {
	var booking Booking
	err := b.client.do(ctx, "/api/bookings/"+id+"/cancel", requestOptions{method: http.MethodPatch, token: token}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsAPI) UpdateStatus(ctx context.Context, id string, status BookingStatus, token string) (*Booking, error) {
	var booking Booking
	body := map[string]BookingStatus{"status": status}
	err := b.client.do(ctx, "/api/bookings/"+id+"/status", requestOptions{method: http.MethodPatch, body: body, token: token}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

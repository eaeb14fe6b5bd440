package wizard

import (
	"context"

	"vedicjivan-booking/internal/api"
)

// BookingsPort is the slice of the bookings API the wizard drives.
type BookingsPort interface {
	Create(ctx context.Context, req api.CreateBookingRequest) (*api.Booking, error)
	Resume(ctx context.Context, id string) (*api.Booking, error)
}

// PaymentsPort creates payment orders and verifies provider callbacks.
type PaymentsPort interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.PaymentOrder, error)
	Verify(ctx context.Context, req api.VerifyPaymentRequest) error
}

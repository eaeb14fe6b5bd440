package api

import (
	"context"
	"net/http"
)

type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id"`
	AmountINR int    `json:"amount_inr"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	BookingID         string `json:"booking_id"`
}

type Payment struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID *string `json:"razorpay_payment_id"`
	AmountINR         int     `json:"amount_inr"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

type PaymentsAPI struct {
	client *Client
}

func NewPaymentsAPI(client *Client) *PaymentsAPI {
	return &PaymentsAPI{client: client}
}

func (p *PaymentsAPI) CreateOrder(ctx context.Context, req CreateOrderRequest) (*PaymentOrder, error) {
	var order PaymentOrder
	err := p.client.do(ctx, "/api/payments/create-order", requestOptions{method: http.MethodPost, body: req}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (p *PaymentsAPI) Verify(ctx context.Context, req VerifyPaymentRequest) error {
	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return p.client.do(ctx, "/api/payments/verify", requestOptions{method: http.MethodPost, body: req}, &result)
}

func (p *PaymentsAPI) List(ctx context.Context, token string) ([]Payment, error) {
	var payments []Payment
	if err := p.client.do(ctx, "/api/payments", requestOptions{token: token}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

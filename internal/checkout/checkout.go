// Package checkout wraps the payment provider's client-side checkout.
// Loading is an explicit capability with a typed result, and the provider
// surface is an interface so the wizard never touches provider globals.
package checkout

import "context"

// Order is the backend-created payment order handed to the provider.
type Order struct {
	OrderID     string
	Amount      int
	Currency    string
	KeyID       string
	Description string
}

// Prefill seeds the provider's contact fields from the draft.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// Result is what the provider's success callback delivers; the backend
// re-validates the signature during verification.
type Result struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Provider opens the checkout UI for an order. The handler is invoked out of
// band with the caller's own control flow, exactly once on success.
type Provider interface {
	Open(ctx context.Context, order Order, prefill Prefill, onSuccess func(Result)) error
}

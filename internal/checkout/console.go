package checkout

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ConsoleProvider drives checkout over a terminal. The user completes the
// payment with the provider out of band and pastes the resulting payment id
// and signature back; an empty payment id dismisses the checkout without a
// success callback, mirroring a closed payment window.
type ConsoleProvider struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleProvider(in io.Reader, out io.Writer) *ConsoleProvider {
	return &ConsoleProvider{in: bufio.NewReader(in), out: out}
}

func (p *ConsoleProvider) Open(ctx context.Context, order Order, prefill Prefill, onSuccess func(Result)) error {
	fmt.Fprintf(p.out, "\nPayment order %s\n", order.OrderID)
	fmt.Fprintf(p.out, "  %s\n", order.Description)
	fmt.Fprintf(p.out, "  Amount: %d %s (key %s)\n", order.Amount, order.Currency, order.KeyID)
	if prefill.Name != "" {
		fmt.Fprintf(p.out, "  Payer: %s <%s> %s\n", prefill.Name, prefill.Email, prefill.Contact)
	}

	paymentID, err := p.prompt(ctx, "Payment id (empty to cancel): ")
	if err != nil {
		return err
	}
	if paymentID == "" {
		fmt.Fprintln(p.out, "Checkout dismissed.")
		return nil
	}
	signature, err := p.prompt(ctx, "Payment signature: ")
	if err != nil {
		return err
	}

	onSuccess(Result{
		OrderID:   order.OrderID,
		PaymentID: paymentID,
		Signature: signature,
	})
	return nil
}

func (p *ConsoleProvider) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

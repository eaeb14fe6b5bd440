// Package cli is the interactive terminal front end: the public booking
// wizard, account login and the gated admin console, all driving the same
// engine packages a graphical shell would.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"vedicjivan-booking/internal/admin"
	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/availability"
	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/domain/booking"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/places"
	"vedicjivan-booking/internal/session"
)

type Deps struct {
	Logger       *slog.Logger
	Clock        clock.Clock
	Tokens       session.TokenStore
	Pending      session.PendingStore
	Auth         *api.AuthAPI
	Bookings     *api.BookingsAPI
	Payments     *api.PaymentsAPI
	Admin        *api.AdminAPI
	Availability *api.AvailabilityAPI
	Resolver     *availability.Resolver
	Checkout     *checkout.Loader
	Gate         *admin.Gate
	Manager      *admin.AvailabilityManager

	// Nav receives the gate's redirects; the loop acts on the recorded route.
	Nav *Navigator

	// Places is nil when no API key is configured; the place-of-birth input
	// then degrades to free text.
	Places         places.Provider
	PlacesDebounce PlacesTuning
}

// PlacesTuning carries the autocomplete knobs from configuration.
type PlacesTuning struct {
	Debounce int // milliseconds
	MinChars int
}

// App owns the terminal loop.
type App struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
}

func NewApp(deps Deps, in io.Reader, out io.Writer) *App {
	if deps.Nav == nil {
		deps.Nav = NewNavigator()
	}
	return &App{
		deps: deps,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "VedicJivan booking")

	for {
		a.printHome(ctx)
		line, ok := a.readLine("> ")
		if !ok {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "book":
			if len(fields) < 2 {
				fmt.Fprintln(a.out, "usage: book <number>")
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			services := booking.Catalog()
			if err != nil || idx < 1 || idx > len(services) {
				fmt.Fprintln(a.out, "no such service")
				continue
			}
			a.runWizard(ctx, services[idx-1])
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "logout":
			if err := a.deps.Tokens.ClearTokens(ctx); err != nil {
				fmt.Fprintln(a.out, "logout failed:", err)
			}
		case "admin":
			a.runAdmin(ctx)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(a.out, "commands: book <n>, login, register, logout, admin, quit")
		}
	}
}

func (a *App) printHome(ctx context.Context) {
	fmt.Fprintln(a.out)
	for i, svc := range booking.Catalog() {
		fmt.Fprintf(a.out, "%2d. %-24s ₹%d\n", i+1, svc.Title, svc.PriceINR)
	}
	if a.deps.Tokens.IsAuthenticated(ctx) {
		fmt.Fprintln(a.out, "(logged in)")
	}
}

func (a *App) login(ctx context.Context) {
	email, ok := a.readLine("email: ")
	if !ok {
		return
	}
	password, ok := a.readLine("password: ")
	if !ok {
		return
	}

	pair, err := a.deps.Auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(a.out, "login failed:", err)
		return
	}
	if err := a.deps.Tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		fmt.Fprintln(a.out, "could not persist session:", err)
		return
	}
	a.deps.Gate.Invalidate()
	fmt.Fprintln(a.out, "logged in")
}

func (a *App) register(ctx context.Context) {
	name, ok := a.readLine("name: ")
	if !ok {
		return
	}
	email, ok := a.readLine("email: ")
	if !ok {
		return
	}
	phone, ok := a.readLine("phone: ")
	if !ok {
		return
	}
	password, ok := a.readLine("password: ")
	if !ok {
		return
	}

	pair, err := a.deps.Auth.Register(ctx, api.RegisterRequest{
		Name: name, Email: email, Phone: phone, Password: password,
	})
	if err != nil {
		fmt.Fprintln(a.out, "registration failed:", err)
		return
	}
	if err := a.deps.Tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		fmt.Fprintln(a.out, "could not persist session:", err)
		return
	}
	fmt.Fprintln(a.out, "registered and logged in")
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) readInt(prompt string) (int, bool) {
	line, ok := a.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(a.out, "not a number")
		return 0, false
	}
	return n, true
}

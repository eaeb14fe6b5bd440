package main

import (
	"context"
	"log/slog"
	"os"

	"vedicjivan-booking/cmd/bootstrap"
	"vedicjivan-booking/internal/admin"
	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/availability"
	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/cli"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/config"
	"vedicjivan-booking/internal/places"
	"vedicjivan-booking/internal/session"

	"go.uber.org/fx"
)

type appParams struct {
	fx.In

	Config   config.Config
	Logger   *slog.Logger
	Clock    clock.Clock
	Tokens   session.TokenStore
	Pending  session.PendingStore
	Auth     *api.AuthAPI
	Bookings *api.BookingsAPI
	Payments *api.PaymentsAPI
	Admin    *api.AdminAPI
	Avail    *api.AvailabilityAPI
	Resolver *availability.Resolver
	Checkout *checkout.Loader
	Gate     *admin.Gate
	Manager  *admin.AvailabilityManager
	Nav      *cli.Navigator
	Places   places.Provider
}

func runApp(lc fx.Lifecycle, shutdowner fx.Shutdowner, p appParams) {
	app := cli.NewApp(cli.Deps{
		Logger:       p.Logger,
		Clock:        p.Clock,
		Tokens:       p.Tokens,
		Pending:      p.Pending,
		Auth:         p.Auth,
		Bookings:     p.Bookings,
		Payments:     p.Payments,
		Admin:        p.Admin,
		Availability: p.Avail,
		Resolver:     p.Resolver,
		Checkout:     p.Checkout,
		Gate:         p.Gate,
		Manager:      p.Manager,
		Nav:          p.Nav,
		Places:       p.Places,
		PlacesDebounce: cli.PlacesTuning{
			Debounce: int(p.Config.Places.Debounce.Milliseconds()),
			MinChars: p.Config.Places.MinChars,
		},
	}, os.Stdin, os.Stdout)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := app.Run(context.Background()); err != nil {
					p.Logger.Error("session ended with error", "error", err)
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(runApp),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}
}

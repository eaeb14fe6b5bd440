package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/pkg/config"
	"vedicjivan-booking/internal/places"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewAPIClient,
		api.NewAuthAPI,
		api.NewBookingsAPI,
		api.NewPaymentsAPI,
		api.NewAvailabilityAPI,
		api.NewAdminAPI,
		NewPlacesProvider,
		NewCheckoutLoader,
	),
)

func NewAPIClient(cfg config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)
}

// NewPlacesProvider returns nil when no API key is configured; the
// place-of-birth input then runs in degraded mode.
func NewPlacesProvider(cfg config.Config) places.Provider {
	if cfg.Places.APIKey == "" {
		return nil
	}
	return places.NewGoogleProvider(cfg.Places.APIKey,
		places.WithBaseURL(cfg.Places.BaseURL),
	)
}

func NewCheckoutLoader() *checkout.Loader {
	return checkout.NewLoader(func(_ context.Context) (checkout.Provider, error) {
		return checkout.NewConsoleProvider(os.Stdin, os.Stdout), nil
	})
}

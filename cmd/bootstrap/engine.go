package bootstrap

import (
	"log/slog"

	"vedicjivan-booking/internal/admin"
	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/availability"
	"vedicjivan-booking/internal/cli"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/session"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		cli.NewNavigator,
		NewResolver,
		NewGate,
		NewAvailabilityManager,
	),
)

func NewResolver(availAPI *api.AvailabilityAPI, clk clock.Clock, logger *slog.Logger) *availability.Resolver {
	return availability.NewResolver(availAPI, clk, logger)
}

func NewGate(tokens session.TokenStore, authAPI *api.AuthAPI, nav *cli.Navigator, clk clock.Clock, logger *slog.Logger) *admin.Gate {
	return admin.NewGate(tokens, authAPI, nav, clk, logger)
}

func NewAvailabilityManager(gate *admin.Gate, availAPI *api.AvailabilityAPI) *admin.AvailabilityManager {
	return admin.NewAvailabilityManager(gate, availAPI)
}

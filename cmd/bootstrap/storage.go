package bootstrap

import (
	"fmt"

	"vedicjivan-booking/internal/pkg/config"
	"vedicjivan-booking/internal/session"
	"vedicjivan-booking/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewKV,
		session.NewTokenStore,
		session.NewPendingStore,
	),
)

// NewKV selects the durable key-value backend for tokens and pending
// bookings.
func NewKV(cfg config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "file":
		return storage.NewFileKV(cfg.Storage.StateDir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		return storage.NewRedisKV(client), nil
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

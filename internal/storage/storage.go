// Package storage is the durable client-side key-value store behind the
// session token store and the pending-booking records. One logical writer per
// process; no cross-process synchronization is attempted.
package storage

import (
	"context"

	"vedicjivan-booking/internal/pkg/errs"
)

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errs.ErrKeyNotFound

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

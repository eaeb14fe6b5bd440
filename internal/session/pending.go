package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/storage"
)

const pendingKeyPrefix = "vj_pending_"

// PendingBooking tracks a booking created server-side but not yet paid for,
// so the user can resume payment after leaving.
type PendingBooking struct {
	BookingID   string    `json:"booking_id"`
	ServiceSlug string    `json:"service_slug"`
	CreatedAt   time.Time `json:"created_at"`
}

// PendingStore keeps at most one record per service slug; Save overwrites.
type PendingStore interface {
	Save(ctx context.Context, rec PendingBooking) error
	Find(ctx context.Context, serviceSlug string) (*PendingBooking, error)
	Delete(ctx context.Context, serviceSlug string) error
}

type pendingStoreImpl struct {
	kv storage.KV
}

func NewPendingStore(kv storage.KV) PendingStore {
	return &pendingStoreImpl{kv: kv}
}

func (p *pendingStoreImpl) Save(ctx context.Context, rec PendingBooking) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode pending booking")
	}
	if err := p.kv.Set(ctx, pendingKeyPrefix+rec.ServiceSlug, string(data)); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

// Find returns nil when no record exists for the slug.
func (p *pendingStoreImpl) Find(ctx context.Context, serviceSlug string) (*PendingBooking, error) {
	raw, err := p.kv.Get(ctx, pendingKeyPrefix+serviceSlug)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	var rec PendingBooking
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// A corrupt record is as good as no record; the wizard starts fresh.
		return nil, nil
	}
	return &rec, nil
}

func (p *pendingStoreImpl) Delete(ctx context.Context, serviceSlug string) error {
	if err := p.kv.Delete(ctx, pendingKeyPrefix+serviceSlug); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

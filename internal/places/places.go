// Package places abstracts the city-autocomplete provider used by the
// place-of-birth input.
package places

import (
	"context"

	"github.com/google/uuid"
)

type Prediction struct {
	PlaceID     string
	Description string
}

type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Provider groups prediction and detail lookups under a per-search session
// token (billing/quota grouping, per the provider's convention).
type Provider interface {
	Predictions(ctx context.Context, input string, sessionToken uuid.UUID) ([]Prediction, error)
	Resolve(ctx context.Context, placeID string, sessionToken uuid.UUID) (*Place, error)
}

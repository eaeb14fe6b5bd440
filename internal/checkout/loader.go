package checkout

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"vedicjivan-booking/internal/pkg/errs"
)

// LoadFunc performs the actual provider initialization (script fetch,
// configuration). It may be slow and may fail.
type LoadFunc func(ctx context.Context) (Provider, error)

// Loader initializes the checkout provider at most once, no matter how many
// payment attempts race. A failed load is not cached: the next attempt
// retries.
type Loader struct {
	load LoadFunc

	sf singleflight.Group

	mu       sync.Mutex
	provider Provider
}

func NewLoader(load LoadFunc) *Loader {
	return &Loader{load: load}
}

// Get returns the loaded provider, loading it on first use. Concurrent
// callers share one in-flight load.
func (l *Loader) Get(ctx context.Context) (Provider, error) {
	l.mu.Lock()
	if l.provider != nil {
		p := l.provider
		l.mu.Unlock()
		return p, nil
	}
	l.mu.Unlock()

	result, err, _ := l.sf.Do("checkout-provider", func() (any, error) {
		p, err := l.load(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load checkout provider")
		}
		l.mu.Lock()
		l.provider = p
		l.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Provider), nil
}

// Loaded reports whether the provider is already initialized.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.provider != nil
}

//go:build unit

package checkout_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"vedicjivan-booking/internal/checkout"
	"vedicjivan-booking/internal/pkg/errs"
	checkoutmock "vedicjivan-booking/tests/mock/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoaderCachesSuccessfulLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := checkoutmock.NewMockProvider(ctrl)

	var loads int32
	loader := checkout.NewLoader(func(context.Context) (checkout.Provider, error) {
		atomic.AddInt32(&loads, 1)
		return provider, nil
	})

	assert.False(t, loader.Loaded())

	first, err := loader.Get(context.Background())
	require.NoError(t, err)
	second, err := loader.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, provider, first)
	assert.Same(t, provider, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&loads))
	assert.True(t, loader.Loaded())
}

func TestLoaderSharesOneInFlightLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := checkoutmock.NewMockProvider(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	var loads int32
	loader := checkout.NewLoader(func(context.Context) (checkout.Provider, error) {
		if atomic.AddInt32(&loads, 1) == 1 {
			close(started)
		}
		<-release
		return provider, nil
	})

	var wg sync.WaitGroup
	results := make([]checkout.Provider, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := loader.Get(context.Background())
			assert.NoError(t, err)
			results[i] = p
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&loads))
	for _, p := range results {
		assert.Same(t, provider, p)
	}
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := checkoutmock.NewMockProvider(ctrl)

	var loads int32
	loader := checkout.NewLoader(func(context.Context) (checkout.Provider, error) {
		if atomic.AddInt32(&loads, 1) == 1 {
			return nil, errs.New("script fetch failed")
		}
		return provider, nil
	})

	_, err := loader.Get(context.Background())
	require.Error(t, err)
	assert.False(t, loader.Loaded())

	// The failure is not cached: the next attempt loads again.
	p, err := loader.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, provider, p)
	assert.EqualValues(t, 2, atomic.LoadInt32(&loads))
	assert.True(t, loader.Loaded())
}

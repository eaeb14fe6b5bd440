package birthinput

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vedicjivan-booking/internal/pkg/debounce"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/places"
)

// PlaceSelection is the resolved output of the autocomplete: the display
// name the user picked plus its geocoordinates.
type PlaceSelection struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// PlaceAutocompleteConfig tunes the input: queries fire after a debounce
// window and only from two characters up.
type PlaceAutocompleteConfig struct {
	Debounce     time.Duration
	MinChars     int
	QueryTimeout time.Duration
}

func (c *PlaceAutocompleteConfig) withDefaults() {
	if c.Debounce == 0 {
		c.Debounce = 300 * time.Millisecond
	}
	if c.MinChars == 0 {
		c.MinChars = 2
	}
	if c.QueryTimeout == 0 {
		c.QueryTimeout = 10 * time.Second
	}
}

// PlaceAutocomplete drives the place-of-birth input. A nil provider puts it
// in degraded mode (disabled field) instead of failing. Responses that arrive
// after a newer keystroke are discarded, never applied.
type PlaceAutocomplete struct {
	provider places.Provider
	cfg      PlaceAutocompleteConfig
	deb      *debounce.Debouncer
	logger   *slog.Logger

	// onSuggestions fires on the debounce goroutine whenever the suggestion
	// list changes.
	onSuggestions func([]places.Prediction)

	mu           sync.Mutex
	text         string
	seq          uint64
	suggestions  []places.Prediction
	open         bool
	sessionToken uuid.UUID
}

func NewPlaceAutocomplete(provider places.Provider, cfg PlaceAutocompleteConfig, logger *slog.Logger, onSuggestions func([]places.Prediction)) *PlaceAutocomplete {
	cfg.withDefaults()
	if onSuggestions == nil {
		onSuggestions = func([]places.Prediction) {}
	}
	return &PlaceAutocomplete{
		provider:      provider,
		cfg:           cfg,
		deb:           debounce.New(cfg.Debounce),
		logger:        logger,
		onSuggestions: onSuggestions,
		sessionToken:  uuid.New(),
	}
}

// Enabled is false when no provider is configured; the input renders as a
// disabled placeholder-only field.
func (a *PlaceAutocomplete) Enabled() bool {
	return a.provider != nil
}

func (a *PlaceAutocomplete) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

func (a *PlaceAutocomplete) Suggestions() []places.Prediction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]places.Prediction(nil), a.suggestions...)
}

func (a *PlaceAutocomplete) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

// SetInput records a keystroke. Each call supersedes the previous pending
// query; short inputs clear the suggestion list without querying.
func (a *PlaceAutocomplete) SetInput(text string) {
	if !a.Enabled() {
		return
	}

	a.mu.Lock()
	a.text = text
	a.seq++
	issued := a.seq
	a.mu.Unlock()

	if len(text) < a.cfg.MinChars {
		a.mu.Lock()
		a.suggestions = nil
		a.open = false
		a.mu.Unlock()
		a.onSuggestions(nil)
		return
	}

	a.deb.Do(func() {
		a.fetch(text, issued)
	})
}

func (a *PlaceAutocomplete) fetch(text string, issued uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.QueryTimeout)
	defer cancel()

	a.mu.Lock()
	token := a.sessionToken
	a.mu.Unlock()

	predictions, err := a.provider.Predictions(ctx, text, token)

	a.mu.Lock()
	if issued != a.seq {
		// A newer keystroke superseded this query.
		a.mu.Unlock()
		return
	}
	if err != nil {
		a.suggestions = nil
		a.open = false
		a.mu.Unlock()
		a.logger.Warn("place predictions fetch failed", "error", err)
		a.onSuggestions(nil)
		return
	}
	a.suggestions = predictions
	a.open = len(predictions) > 0
	a.mu.Unlock()
	a.onSuggestions(predictions)
}

// Select resolves a suggestion to coordinates, adopts its description as the
// input text, closes the dropdown and rotates the search session token.
func (a *PlaceAutocomplete) Select(ctx context.Context, index int) (*PlaceSelection, error) {
	if !a.Enabled() {
		return nil, errs.ErrPlacesUnconfigured
	}

	a.mu.Lock()
	if index < 0 || index >= len(a.suggestions) {
		a.mu.Unlock()
		return nil, errs.Newf("no suggestion at index %d", index)
	}
	prediction := a.suggestions[index]
	token := a.sessionToken
	a.mu.Unlock()

	place, err := a.provider.Resolve(ctx, prediction.PlaceID, token)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve place")
	}

	a.mu.Lock()
	a.text = prediction.Description
	a.suggestions = nil
	a.open = false
	a.seq++ // any in-flight prediction fetch is now stale
	a.sessionToken = uuid.New()
	a.mu.Unlock()

	// The display name is the prediction the user clicked, not the provider's
	// formatted address.
	return &PlaceSelection{
		Name:      prediction.Description,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	}, nil
}

// Dismiss closes the dropdown without clearing the typed text (the
// click-outside behavior).
func (a *PlaceAutocomplete) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open = false
}

// Close cancels any pending debounced query. Call on unmount.
func (a *PlaceAutocomplete) Close() {
	a.deb.Stop()
	a.mu.Lock()
	a.seq++
	a.mu.Unlock()
}

package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"vedicjivan-booking/internal/pkg/errs"
)

// GoogleProvider talks to the Google Places web service (autocomplete +
// details), restricted to city results.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type GoogleOption func(*GoogleProvider)

func WithHTTPClient(client *http.Client) GoogleOption {
	return func(g *GoogleProvider) {
		g.httpClient = client
	}
}

func WithBaseURL(baseURL string) GoogleOption {
	return func(g *GoogleProvider) {
		g.baseURL = baseURL
	}
}

func NewGoogleProvider(apiKey string, opts ...GoogleOption) *GoogleProvider {
	g := &GoogleProvider{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GoogleProvider) Predictions(ctx context.Context, input string, sessionToken uuid.UUID) ([]Prediction, error) {
	query := url.Values{}
	query.Set("input", input)
	query.Set("types", "(cities)")
	query.Set("sessiontoken", sessionToken.String())
	query.Set("key", g.apiKey)

	var body struct {
		Status      string `json:"status"`
		Predictions []struct {
			PlaceID     string `json:"place_id"`
			Description string `json:"description"`
		} `json:"predictions"`
	}
	if err := g.get(ctx, "/autocomplete/json?"+query.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, errs.New("places autocomplete returned status " + body.Status)
	}

	predictions := make([]Prediction, 0, len(body.Predictions))
	for _, p := range body.Predictions {
		predictions = append(predictions, Prediction{PlaceID: p.PlaceID, Description: p.Description})
	}
	return predictions, nil
}

func (g *GoogleProvider) Resolve(ctx context.Context, placeID string, sessionToken uuid.UUID) (*Place, error) {
	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", "geometry,formatted_address,name")
	query.Set("sessiontoken", sessionToken.String())
	query.Set("key", g.apiKey)

	var body struct {
		Status string `json:"status"`
		Result struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"result"`
	}
	if err := g.get(ctx, "/details/json?"+query.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, errs.New("places details returned status " + body.Status)
	}

	return &Place{
		Name:      body.Result.FormattedAddress,
		Latitude:  body.Result.Geometry.Location.Lat,
		Longitude: body.Result.Geometry.Location.Lng,
	}, nil
}

func (g *GoogleProvider) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+endpoint, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build places request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "places request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Newf("places request failed with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode places response")
	}
	return nil
}

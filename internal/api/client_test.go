//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vedicjivan-booking/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

// newTestServer replays a canned status/body and records what the client
// sent.
func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestBearerAttachedOnlyWhenTokenPresent(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `[]`)
	bookings := api.NewBookingsAPI(api.NewClient(srv.URL))

	_, err := bookings.List(context.Background(), "tok_access", api.ListBookingsParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok_access", rec.auth)

	// Guest endpoints must not send an empty bearer header.
	srv2, rec2 := newTestServer(t, http.StatusOK, `{"id":"bk_1"}`)
	bookings = api.NewBookingsAPI(api.NewClient(srv2.URL))
	_, err = bookings.Resume(context.Background(), "bk_1")
	require.NoError(t, err)
	assert.Empty(t, rec2.auth)
	assert.Equal(t, "/api/bookings/bk_1/resume", rec2.path)
}

func TestCreateBookingPostsJSONBody(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated, `{"id":"bk_9","price_inr":1999}`)
	bookings := api.NewBookingsAPI(api.NewClient(srv.URL))

	created, err := bookings.Create(context.Background(), api.CreateBookingRequest{
		ServiceSlug: "call-consultation",
		Date:        "2026-09-15",
		TimeSlot:    "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "bk_9", created.ID)
	assert.Equal(t, 1999, created.PriceINR)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/bookings", rec.path)
	assert.Equal(t, "call-consultation", rec.body["service_slug"])
	// Known birth time absent from the draft still serializes explicitly.
	assert.Contains(t, rec.body, "birth_time_unknown")
}

func TestErrorDetailSurfaces(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusConflict, `{"detail":"Slot already booked"}`)
	bookings := api.NewBookingsAPI(api.NewClient(srv.URL))

	_, err := bookings.Create(context.Background(), api.CreateBookingRequest{})
	require.Error(t, err)
	assert.Equal(t, "Slot already booked", err.Error())
	assert.Equal(t, http.StatusConflict, api.StatusOf(err))
	assert.False(t, api.IsUnauthorized(err))
}

func TestErrorWithoutDetailBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `oops`)
	auth := api.NewAuthAPI(api.NewClient(srv.URL))

	_, err := auth.Me(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "request failed (status 500)", err.Error())
}

func TestIsUnauthorizedCovers401And403Only(t *testing.T) {
	for _, tc := range []struct {
		status       int
		unauthorized bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{http.StatusBadGateway, false},
	} {
		srv, _ := newTestServer(t, tc.status, `{"detail":"x"}`)
		auth := api.NewAuthAPI(api.NewClient(srv.URL))

		_, err := auth.Me(context.Background(), "tok")
		require.Error(t, err)
		assert.Equal(t, tc.unauthorized, api.IsUnauthorized(err), "status %d", tc.status)
	}
}

func TestNetworkFailureHasNoStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	srv.Close()
	auth := api.NewAuthAPI(api.NewClient(srv.URL))

	_, err := auth.Me(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, 0, api.StatusOf(err))
	assert.False(t, api.IsUnauthorized(err))
}

func TestAvailabilityQueryEncoding(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `[]`)
	avail := api.NewAvailabilityAPI(api.NewClient(srv.URL))

	_, err := avail.Range(context.Background(), "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	assert.Equal(t, "/api/availability/range", rec.path)
	assert.Equal(t, "start=2026-09-01&end=2026-09-30", rec.query)
}

func TestByDateNullBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `null`)
	avail := api.NewAvailabilityAPI(api.NewClient(srv.URL))

	day, err := avail.ByDate(context.Background(), "2026-09-15")
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestVerifyPaymentWireFormat(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"status":"success"}`)
	payments := api.NewPaymentsAPI(api.NewClient(srv.URL))

	err := payments.Verify(context.Background(), api.VerifyPaymentRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig_1",
		BookingID:         "bk_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/payments/verify", rec.path)
	assert.Equal(t, "order_1", rec.body["razorpay_order_id"])
	assert.Equal(t, "pay_1", rec.body["razorpay_payment_id"])
	assert.Equal(t, "sig_1", rec.body["razorpay_signature"])
	assert.Equal(t, "bk_1", rec.body["booking_id"])
}

package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-locator-service/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *MelhorEnvioClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewMelhorEnvioClient("test-token", srv.URL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestNewMelhorEnvioClientRequiresToken(t *testing.T) {
	_, err := NewMelhorEnvioClient("", "", time.Second)
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/me/shipment/calculate", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req quoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "50060004", req.From.PostalCode)
		assert.Equal(t, "50930070", req.To.PostalCode)
		assert.Equal(t, defaultParcel, req.Package)
		assert.Equal(t, "1,2", req.Services)

		w.Write([]byte(`[
			{"name": "SEDEX", "delivery_time": 3, "custom_price": "25.50"},
			{"name": "PAC", "delivery_time": 8, "custom_price": "19.90"}
		]`))
	})

	options, err := client.Quote(context.Background(), "50060004", "50930070")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, "SEDEX", options[0].Name)
	assert.Equal(t, 3, options[0].DeliveryDays)
	assert.Equal(t, 25.5, options[0].Price)
	assert.Equal(t, "PAC", options[1].Name)
}

func TestQuoteSkipsUnavailableServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name": "SEDEX", "error": "Service unavailable for this route"},
			{"name": "PAC", "delivery_time": 8, "custom_price": "19.90"}
		]`))
	})

	options, err := client.Quote(context.Background(), "50060004", "50930070")
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, "PAC", options[0].Name)
}

func TestQuoteNonArrayResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "unexpected object"}`))
	})

	_, err := client.Quote(context.Background(), "50060004", "50930070")
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindUpstream, derr.Kind)
	assert.Equal(t, "carrier-rate", derr.Provider)
	assert.Contains(t, derr.Detail, "malformed response")
}

func TestQuoteEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.Quote(context.Background(), "50060004", "50930070")
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Detail, "malformed response")
}

func TestQuoteFallsBackToListPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "SEDEX", "delivery_time": 3, "price": "30.00"}]`))
	})

	options, err := client.Quote(context.Background(), "50060004", "50930070")
	require.NoError(t, err)
	assert.Equal(t, 30.0, options[0].Price)
}

func TestQuoteHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthenticated."}`))
	})

	_, err := client.Quote(context.Background(), "50060004", "50930070")
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindUpstream, derr.Kind)
}

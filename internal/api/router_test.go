package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/ports"
	"store-locator-service/internal/services"
)

type stubRepo struct {
	stores []*domain.Store
}

func (r *stubRepo) ListStores(_ context.Context, filter ports.StoreFilter, limit, offset int) ([]*domain.Store, error) {
	var out []*domain.Store
	for _, s := range r.stores {
		if filter.State != "" && !strings.EqualFold(filter.State, s.State) {
			continue
		}
		out = append(out, s)
	}
	if limit <= 0 {
		return out, nil
	}
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *stubRepo) CountStores(ctx context.Context, filter ports.StoreFilter) (int, error) {
	all, err := r.ListStores(ctx, filter, 0, 0)
	return len(all), err
}

func (r *stubRepo) FindStoreByID(_ context.Context, id string) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.NotFound("store " + id + " not found")
}

type stubPostal struct{ err error }

func (p *stubPostal) Lookup(context.Context, string) (domain.PostalAddress, error) {
	if p.err != nil {
		return domain.PostalAddress{}, p.err
	}
	return domain.PostalAddress{
		Street:     "Av. Caxangá",
		City:       "Recife",
		State:      "PE",
		PostalCode: "50930-070",
	}, nil
}

type stubGeocoder struct{}

func (stubGeocoder) Geocode(context.Context, string) (domain.Coordinates, error) {
	return domain.Coordinates{Lat: -8.05, Lng: -34.9}, nil
}

type stubDistances struct{ km float64 }

func (d stubDistances) Distance(context.Context, domain.Coordinates, domain.Coordinates) (float64, error) {
	return d.km, nil
}

type stubCarrier struct{}

func (stubCarrier) Quote(context.Context, string, string) ([]ports.CarrierOption, error) {
	return []ports.CarrierOption{{DeliveryDays: 3, Price: 25.5, Name: "SEDEX"}}, nil
}

func testRouter(t *testing.T, repo *stubRepo, postal *stubPostal, km float64) http.Handler {
	t.Helper()
	locator := services.NewStoreLocator(
		repo, postal, stubGeocoder{}, stubDistances{km: km}, stubCarrier{}, nil,
		services.DefaultLocatorConfig(),
	)
	return NewRouter(locator, services.NewStoreCatalog(repo))
}

func catalogFixture() *stubRepo {
	return &stubRepo{stores: []*domain.Store{
		{
			ID:         "s1",
			Name:       "Loja Recife",
			PostalCode: "50060-004",
			City:       "Recife",
			State:      "PE",
			Kind:       domain.StoreKindFull,
			Location:   &domain.Coordinates{Lat: -8.06, Lng: -34.88},
		},
		{
			ID:       "s2",
			Name:     "Loja São Paulo",
			City:     "São Paulo",
			State:    "SP",
			Kind:     domain.StoreKindCounter,
			Location: &domain.Coordinates{Lat: -23.55, Lng: -46.63},
		},
	}}
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouterHealth(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterRequestIDEcho(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestRouterListStores(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores?limit=1&offset=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Stores []struct {
				StoreName string `json:"storeName"`
			} `json:"stores"`
		} `json:"data"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Total  int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data.Stores, 1)
	assert.Equal(t, "Loja Recife", body.Data.Stores[0].StoreName)
	assert.Equal(t, 1, body.Limit)
	assert.Equal(t, 2, body.Total)
}

func TestRouterListStoresBadPagination(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterListByState(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores/state/sp")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loja São Paulo")

	rec = doRequest(t, h, "/stores/state/RJ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterGetByID(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores/id/s1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loja Recife")

	rec = doRequest(t, h, "/stores/id/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterLocateByCEP(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores/cep/50930-070")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   []struct {
			Name     string `json:"name"`
			Distance string `json:"distance"`
			Shipping []struct {
				EstimatedDelivery string `json:"estimatedDelivery"`
				Price             string `json:"price"`
				Description       string `json:"description"`
			} `json:"shipping"`
		} `json:"data"`
		Pins []struct {
			Title string `json:"title"`
		} `json:"pins"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "10.00 km", body.Data[0].Distance)
	require.Len(t, body.Data[0].Shipping, 1)
	assert.Equal(t, "1 dia útil", body.Data[0].Shipping[0].EstimatedDelivery)
	assert.Equal(t, "R$ 15.00", body.Data[0].Shipping[0].Price)
	require.Len(t, body.Pins, 1)
	assert.Equal(t, 1, body.Total)
}

func TestRouterLocateByCEPInvalidCode(t *testing.T) {
	h := testRouter(t, catalogFixture(), &stubPostal{}, 10)

	rec := doRequest(t, h, "/stores/cep/1234")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestRouterLocateByCEPUnknownCode(t *testing.T) {
	postal := &stubPostal{err: domain.NotFound("postal code not found")}
	h := testRouter(t, catalogFixture(), postal, 10)

	rec := doRequest(t, h, "/stores/cep/50930070")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterLocateByCEPUpstreamFailure(t *testing.T) {
	postal := &stubPostal{err: domain.Upstream("postal-lookup", "status 500", nil)}
	h := testRouter(t, catalogFixture(), postal, 10)

	rec := doRequest(t, h, "/stores/cep/50930070")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "status 500")
}

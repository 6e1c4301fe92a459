package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/ports"
)

type mockStoreRepository struct {
	stores    []*domain.Store
	err       error
	listCalls int
}

func (m *mockStoreRepository) ListStores(ctx context.Context, filter ports.StoreFilter, limit, offset int) ([]*domain.Store, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}

	matched := make([]*domain.Store, 0, len(m.stores))
	for _, s := range m.stores {
		if filter.State != "" && !strings.EqualFold(s.State, filter.State) {
			continue
		}
		matched = append(matched, s)
	}

	if limit <= 0 {
		return matched, nil
	}
	if offset >= len(matched) {
		return []*domain.Store{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *mockStoreRepository) CountStores(ctx context.Context, filter ports.StoreFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	total := 0
	for _, s := range m.stores {
		if filter.State != "" && !strings.EqualFold(s.State, filter.State) {
			continue
		}
		total++
	}
	return total, nil
}

func (m *mockStoreRepository) FindStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.NotFound("store " + id + " not found")
}

type mockPostalLookup struct {
	addr  domain.PostalAddress
	err   error
	calls int
}

func (m *mockPostalLookup) Lookup(ctx context.Context, code string) (domain.PostalAddress, error) {
	m.calls++
	if m.err != nil {
		return domain.PostalAddress{}, m.err
	}
	return m.addr, nil
}

type mockGeocoder struct {
	coords domain.Coordinates
	err    error
	calls  int
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	m.calls++
	if m.err != nil {
		return domain.Coordinates{}, m.err
	}
	return m.coords, nil
}

// mockDistanceProvider maps destination coordinates to a fixed distance.
// It is exercised concurrently by the fan-out, so counters are locked.
type mockDistanceProvider struct {
	mu      sync.Mutex
	km      map[string]float64
	failFor map[string]error
	calls   int
}

func newMockDistanceProvider() *mockDistanceProvider {
	return &mockDistanceProvider{
		km:      make(map[string]float64),
		failFor: make(map[string]error),
	}
}

func (m *mockDistanceProvider) set(dest domain.Coordinates, km float64) {
	m.km[dest.LatLng()] = km
}

func (m *mockDistanceProvider) fail(dest domain.Coordinates, err error) {
	m.failFor[dest.LatLng()] = err
}

func (m *mockDistanceProvider) Distance(ctx context.Context, origin, destination domain.Coordinates) (float64, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if err, ok := m.failFor[destination.LatLng()]; ok {
		return 0, err
	}
	if km, ok := m.km[destination.LatLng()]; ok {
		return km, nil
	}
	return 0, errors.New("no mocked distance for " + destination.LatLng())
}

type mockCarrierRates struct {
	options []ports.CarrierOption
	err     error
	calls   int
	from    string
	to      string
}

func (m *mockCarrierRates) Quote(ctx context.Context, fromCode, toCode string) ([]ports.CarrierOption, error) {
	m.calls++
	m.from = fromCode
	m.to = toCode
	if m.err != nil {
		return nil, m.err
	}
	return m.options, nil
}

type mockGeocodeCache struct {
	entries map[string]domain.Coordinates
	gets    int
	puts    int
}

func newMockGeocodeCache() *mockGeocodeCache {
	return &mockGeocodeCache{entries: make(map[string]domain.Coordinates)}
}

func (m *mockGeocodeCache) Get(ctx context.Context, code string) (domain.Coordinates, bool, error) {
	m.gets++
	coords, ok := m.entries[code]
	return coords, ok, nil
}

func (m *mockGeocodeCache) Put(ctx context.Context, code string, coords domain.Coordinates) error {
	m.puts++
	m.entries[code] = coords
	return nil
}

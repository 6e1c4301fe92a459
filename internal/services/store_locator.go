package services

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
	"store-locator-service/internal/ports"
)

// LocatorConfig carries the business constants of the pipeline. The
// catalog radius (candidate filter) and the local-delivery threshold
// (shipping-kind switch) are distinct values and must stay distinct.
type LocatorConfig struct {
	// CatalogRadiusKm drops stores farther than this from candidacy.
	// Zero or negative disables the filter.
	CatalogRadiusKm     float64
	LocalDeliveryMaxKm  float64
	LocalDeliveryPrice  float64
	DistanceConcurrency int
	ProviderTimeout     time.Duration
}

// DefaultLocatorConfig mirrors the production defaults.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		CatalogRadiusKm:     0,
		LocalDeliveryMaxKm:  50,
		LocalDeliveryPrice:  15,
		DistanceConcurrency: 10,
		ProviderTimeout:     10 * time.Second,
	}
}

// StoreLocator orchestrates the resolution pipeline: postal code
// validation, address resolution, geocoding, per-store distance fan-out,
// nearest-store selection and shipping derivation.
//
// Each invocation is stateless; the only shared state is the read-only
// catalog connection behind the repository port.
type StoreLocator struct {
	repo      ports.StoreRepository
	postal    ports.PostalLookup
	geocoder  ports.Geocoder
	distances ports.DistanceProvider
	carrier   ports.CarrierRates
	cache     ports.GeocodeCache
	cfg       LocatorConfig
}

// NewStoreLocator wires the pipeline. cache may be nil to disable
// geocode caching.
func NewStoreLocator(
	repo ports.StoreRepository,
	postal ports.PostalLookup,
	geocoder ports.Geocoder,
	distances ports.DistanceProvider,
	carrier ports.CarrierRates,
	cache ports.GeocodeCache,
	cfg LocatorConfig,
) *StoreLocator {
	if cfg.DistanceConcurrency < 1 {
		cfg.DistanceConcurrency = 1
	}
	return &StoreLocator{
		repo:      repo,
		postal:    postal,
		geocoder:  geocoder,
		distances: distances,
		carrier:   carrier,
		cache:     cache,
		cfg:       cfg,
	}
}

// Postal codes are exactly eight digits with one optional hyphen after
// the fifth, e.g. "01001000" or "01001-000".
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// NormalizeCEP validates a postal code and strips the optional separator.
func NormalizeCEP(code string) (string, error) {
	code = strings.TrimSpace(code)
	if !cepPattern.MatchString(code) {
		return "", domain.InvalidInput("postal code must have exactly 8 digits")
	}
	return strings.ReplaceAll(code, "-", ""), nil
}

// LocateByCEP answers "nearest store + shipping options" for a postal
// code. It fails with a typed domain error on any stage failure; no
// external service is contacted for a malformed code.
func (l *StoreLocator) LocateByCEP(ctx context.Context, code string) (_ domain.LocatorResponse, err error) {
	defer obs.Time(ctx, "locator.LocateByCEP")(&err)

	norm, err := NormalizeCEP(code)
	if err != nil {
		return domain.LocatorResponse{}, err
	}

	origin, err := l.resolveOrigin(ctx, norm)
	if err != nil {
		return domain.LocatorResponse{}, err
	}

	nearest, err := l.findNearest(ctx, norm, origin)
	if err != nil {
		return domain.LocatorResponse{}, err
	}

	shipping, err := l.deriveShipping(ctx, norm, nearest)
	if err != nil {
		return domain.LocatorResponse{}, err
	}

	return FormatLocatorResponse(nearest, shipping), nil
}

// resolveOrigin turns a normalized postal code into coordinates: directory
// lookup, then geocoding, with an optional cache short-circuiting both.
func (l *StoreLocator) resolveOrigin(ctx context.Context, norm string) (domain.Coordinates, error) {
	if l.cache != nil {
		coords, ok, err := l.cache.Get(ctx, norm)
		if err != nil {
			// Cache trouble must not fail the request.
			obs.Logger().Warnw("geocode cache read failed", "req_id", obs.RequestIDFrom(ctx), "err", err)
		} else if ok {
			return coords, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, l.cfg.ProviderTimeout)
	addr, err := l.postal.Lookup(callCtx, norm)
	cancel()
	if err != nil {
		return domain.Coordinates{}, err
	}

	text := addr.FreeText()
	if text == "" {
		return domain.Coordinates{}, domain.NotFound(fmt.Sprintf("postal code %s resolved to an empty address", norm))
	}

	callCtx, cancel = context.WithTimeout(ctx, l.cfg.ProviderTimeout)
	coords, err := l.geocoder.Geocode(callCtx, text)
	cancel()
	if err != nil {
		return domain.Coordinates{}, err
	}

	if l.cache != nil {
		if err := l.cache.Put(ctx, norm, coords); err != nil {
			obs.Logger().Warnw("geocode cache write failed", "req_id", obs.RequestIDFrom(ctx), "err", err)
		}
	}

	return coords, nil
}

type distanceOutcome struct {
	idx int
	km  float64
	err error
}

// findNearest scans the whole catalog, computes road distances with
// bounded concurrency and selects the closest store within the catalog
// radius. A store whose distance call fails loses candidacy rather than
// aborting the request; the request fails only when every call failed.
func (l *StoreLocator) findNearest(ctx context.Context, norm string, origin domain.Coordinates) (domain.StoreWithDistance, error) {
	stores, err := l.repo.ListStores(ctx, ports.StoreFilter{}, 0, 0)
	if err != nil {
		return domain.StoreWithDistance{}, fmt.Errorf("locate: list stores: %w", err)
	}

	located := make([]*domain.Store, 0, len(stores))
	for _, s := range stores {
		if s.HasLocation() {
			located = append(located, s)
		}
	}

	if len(located) == 0 {
		return domain.StoreWithDistance{}, domain.NotFound(fmt.Sprintf("no stores reachable for postal code %s", norm))
	}

	sem := make(chan struct{}, l.cfg.DistanceConcurrency)
	results := make(chan distanceOutcome, len(located))
	var wg sync.WaitGroup

	for i, store := range located {
		wg.Add(1)
		go func(idx int, dest domain.Coordinates) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			// Queued calls drain without touching the provider once the
			// request is cancelled.
			if err := ctx.Err(); err != nil {
				results <- distanceOutcome{idx: idx, err: err}
				return
			}

			callCtx, cancel := context.WithTimeout(ctx, l.cfg.ProviderTimeout)
			defer cancel()

			km, err := l.distances.Distance(callCtx, origin, dest)
			results <- distanceOutcome{idx: idx, km: km, err: err}
		}(i, *store.Location)
	}

	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return domain.StoreWithDistance{}, err
	}

	byIdx := make([]*distanceOutcome, len(located))
	for res := range results {
		r := res
		byIdx[r.idx] = &r
	}

	candidates := make([]domain.StoreWithDistance, 0, len(located))
	failures := 0
	// Iterate in catalog order so equal distances keep that order after
	// the stable sort.
	for i, store := range located {
		res := byIdx[i]
		if res == nil || res.err != nil {
			failures++
			if res != nil {
				obs.Logger().Warnw("distance call failed, store excluded",
					"req_id", obs.RequestIDFrom(ctx), "store_id", store.ID, "err", res.err)
			}
			continue
		}
		if l.cfg.CatalogRadiusKm > 0 && res.km > l.cfg.CatalogRadiusKm {
			continue
		}
		candidates = append(candidates, domain.StoreWithDistance{Store: store, DistanceKm: res.km})
	}

	if failures == len(located) {
		return domain.StoreWithDistance{}, domain.Upstream("distance", "all distance calls failed", nil)
	}

	if len(candidates) == 0 {
		return domain.StoreWithDistance{}, domain.NotFound(fmt.Sprintf("no stores reachable for postal code %s", norm))
	}

	slices.SortStableFunc(candidates, func(a, b domain.StoreWithDistance) int {
		if a.DistanceKm < b.DistanceKm {
			return -1
		}
		if a.DistanceKm > b.DistanceKm {
			return 1
		}
		return 0
	})

	return candidates[0], nil
}

// deriveShipping picks the fulfillment mode: a flat local-delivery rate
// within the threshold (inclusive), a carrier quote beyond it. Carrier
// ETAs are inflated by the store's handling time here, before formatting.
func (l *StoreLocator) deriveShipping(ctx context.Context, norm string, nearest domain.StoreWithDistance) (domain.ShippingResult, error) {
	if nearest.DistanceKm <= l.cfg.LocalDeliveryMaxKm {
		return domain.ShippingResult{
			Kind: domain.ShippingLocalDelivery,
			Options: []domain.ShippingOption{{
				DeliveryDays: 1,
				Price:        l.cfg.LocalDeliveryPrice,
				Description:  "Motoboy",
			}},
		}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, l.cfg.ProviderTimeout)
	defer cancel()

	quotes, err := l.carrier.Quote(callCtx, nearest.Store.PostalCode, norm)
	if err != nil {
		return domain.ShippingResult{}, err
	}

	options := make([]domain.ShippingOption, 0, len(quotes))
	for _, q := range quotes {
		options = append(options, domain.ShippingOption{
			DeliveryDays: q.DeliveryDays + nearest.Store.HandlingDays,
			Price:        q.Price,
			Description:  q.Name,
		})
	}

	return domain.ShippingResult{Kind: domain.ShippingCarrierQuote, Options: options}, nil
}

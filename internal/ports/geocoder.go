package ports

import (
	"context"
	"store-locator-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Geocode returns the best match for the address. Zero results fail
	// with a NotFound domain error.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Optional cache in front of the geocoder, keyed by normalized postal
// code. A nil cache disables caching entirely.
type GeocodeCache interface {
	// Get reports (coords, true, nil) on a hit and (_, false, nil) on a miss.
	Get(ctx context.Context, code string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, code string, coords domain.Coordinates) error
}

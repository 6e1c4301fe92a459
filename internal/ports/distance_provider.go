package ports

import (
	"context"
	"store-locator-service/internal/domain"
)

// Contract for retrieving ground-travel distance between two points.
type DistanceProvider interface {
	// Distance returns the road distance in kilometers from origin to
	// destination.
	Distance(ctx context.Context, origin, destination domain.Coordinates) (float64, error)
}

package ports

import (
	"context"
	"store-locator-service/internal/domain"
)

// StoreFilter narrows catalog queries. A zero value matches everything.
type StoreFilter struct {
	// State filters by store state, case-insensitive exact match.
	State string
}

// Port: a boundary for reading the store catalog.
type StoreRepository interface {
	// ListStores returns stores matching the filter in stable catalog
	// order. limit <= 0 disables pagination (full scan for the locator).
	ListStores(ctx context.Context, filter StoreFilter, limit, offset int) ([]*domain.Store, error)

	// CountStores returns the unpaginated total for the filter.
	CountStores(ctx context.Context, filter StoreFilter) (int, error)

	// FindStoreByID fails with a NotFound domain error when missing.
	FindStoreByID(ctx context.Context, id string) (*domain.Store, error)
}

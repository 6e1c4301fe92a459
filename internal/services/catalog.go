package services

import (
	"context"
	"fmt"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
	"store-locator-service/internal/ports"
)

const (
	defaultListLimit = 10
	minListLimit     = 1
)

// StoreCatalog exposes the read-only listing operations that never touch
// an external provider.
type StoreCatalog struct {
	repo ports.StoreRepository
}

func NewStoreCatalog(repo ports.StoreRepository) *StoreCatalog {
	return &StoreCatalog{repo: repo}
}

func clampPage(limit, offset int) (int, int) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < minListLimit {
		limit = minListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListAll returns one catalog page plus the unpaginated total.
// An empty catalog is a NotFound condition.
func (c *StoreCatalog) ListAll(ctx context.Context, limit, offset int) (_ domain.StoreListing, err error) {
	defer obs.Time(ctx, "catalog.ListAll")(&err)
	return c.list(ctx, ports.StoreFilter{}, limit, offset)
}

// ListByState filters by state, case-insensitive exact match.
func (c *StoreCatalog) ListByState(ctx context.Context, state string, limit, offset int) (_ domain.StoreListing, err error) {
	defer obs.Time(ctx, "catalog.ListByState")(&err)
	return c.list(ctx, ports.StoreFilter{State: state}, limit, offset)
}

func (c *StoreCatalog) list(ctx context.Context, filter ports.StoreFilter, limit, offset int) (domain.StoreListing, error) {
	limit, offset = clampPage(limit, offset)

	stores, err := c.repo.ListStores(ctx, filter, limit, offset)
	if err != nil {
		return domain.StoreListing{}, fmt.Errorf("list stores: %w", err)
	}

	total, err := c.repo.CountStores(ctx, filter)
	if err != nil {
		return domain.StoreListing{}, fmt.Errorf("count stores: %w", err)
	}

	if total == 0 {
		if filter.State != "" {
			return domain.StoreListing{}, domain.NotFound(fmt.Sprintf("no stores found for state %s", filter.State))
		}
		return domain.StoreListing{}, domain.NotFound("no stores found")
	}

	return FormatStoreListing(stores, limit, offset, total), nil
}

// FindByID returns a single store; missing ids surface as NotFound.
func (c *StoreCatalog) FindByID(ctx context.Context, id string) (_ *domain.Store, err error) {
	defer obs.Time(ctx, "catalog.FindByID")(&err)

	store, err := c.repo.FindStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return store, nil
}

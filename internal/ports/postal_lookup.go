package ports

import (
	"context"
	"store-locator-service/internal/domain"
)

// Contract for resolving a postal code to a structured address.
type PostalLookup interface {
	// Lookup resolves a normalized (digits-only) postal code.
	// An unknown code fails with a NotFound domain error.
	Lookup(ctx context.Context, code string) (domain.PostalAddress, error)
}

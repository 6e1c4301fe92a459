package services

import (
	"store-locator-service/internal/domain"
)

// FormatLocatorResponse shapes a located store and its shipping decision
// into the external response envelope. Pure function: no side effects,
// no failure modes. The pagination fields of a single-nearest-store
// query are fixed at limit=1, offset=0, total=1.
func FormatLocatorResponse(nearest domain.StoreWithDistance, shipping domain.ShippingResult) domain.LocatorResponse {
	quotes := make([]domain.ShippingQuote, 0, len(shipping.Options))
	for _, opt := range shipping.Options {
		quotes = append(quotes, domain.ShippingQuote{
			EstimatedDelivery: domain.BusinessDaysLabel(opt.DeliveryDays),
			Price:             domain.PriceLabel(opt.Price),
			Description:       opt.Description,
		})
	}

	summary := domain.StoreSummary{
		Name:       nearest.Store.Name,
		City:       nearest.Store.City,
		PostalCode: nearest.Store.PostalCode,
		Kind:       shipping.Kind,
		Distance:   nearest.DistanceLabel(),
		Shipping:   quotes,
	}

	pins := []domain.Pin{}
	if nearest.Store.HasLocation() {
		pins = append(pins, domain.Pin{
			Position: *nearest.Store.Location,
			Title:    nearest.Store.Name,
		})
	}

	return domain.LocatorResponse{
		Data:   []domain.StoreSummary{summary},
		Pins:   pins,
		Limit:  1,
		Offset: 0,
		Total:  1,
	}
}

// FormatStoreListing pairs a catalog page with its pagination metadata.
// Internal-only fields (raw distance, coordinates) are stripped later by
// the transport DTOs; this keeps repository-provided totals attached to
// the page they were counted for.
func FormatStoreListing(stores []*domain.Store, limit, offset, total int) domain.StoreListing {
	return domain.StoreListing{
		Stores: stores,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	}
}

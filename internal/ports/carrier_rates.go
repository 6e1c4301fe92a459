package ports

import "context"

// CarrierOption is one raw quote from the carrier. DeliveryDays excludes
// store handling time; the locator adds it before formatting.
type CarrierOption struct {
	DeliveryDays int
	Price        float64
	Name         string
}

// Contract for quoting carrier shipping between two postal codes.
// Parcel dimensions are a fixed profile owned by the adapter.
type CarrierRates interface {
	Quote(ctx context.Context, fromCode, toCode string) ([]CarrierOption, error)
}

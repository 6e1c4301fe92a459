package domain

import "fmt"

// ShippingKind is the fulfillment mode for a located store.
type ShippingKind string

const (
	// ShippingLocalDelivery is a flat-rate short-haul delivery from a
	// nearby store ("PDV").
	ShippingLocalDelivery ShippingKind = "PDV"
	// ShippingCarrierQuote is a third-party carrier shipment from the
	// store ("LOJA").
	ShippingCarrierQuote ShippingKind = "LOJA"
)

// ShippingOption is a single priced delivery method. DeliveryDays is in
// business days and already includes the store's handling time.
type ShippingOption struct {
	DeliveryDays int
	Price        float64
	Description  string
}

// ShippingResult is the derived shipping decision for one request.
// Options keep the order they were produced in; no sorting contract.
type ShippingResult struct {
	Kind    ShippingKind
	Options []ShippingOption
}

// BusinessDaysLabel renders a business-day count, e.g. "1 dia útil".
func BusinessDaysLabel(days int) string {
	if days == 1 {
		return "1 dia útil"
	}
	return fmt.Sprintf("%d dias úteis", days)
}

// PriceLabel renders a price in BRL, e.g. "R$ 15.00".
func PriceLabel(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

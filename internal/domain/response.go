package domain

// Pin is a map marker returned alongside a store summary for client-side
// map rendering.
type Pin struct {
	Position Coordinates
	Title    string
}

// ShippingQuote is a display-ready shipping option.
type ShippingQuote struct {
	EstimatedDelivery string
	Price             string
	Description       string
}

// StoreSummary is the display-ready view of a located store.
type StoreSummary struct {
	Name       string
	City       string
	PostalCode string
	Kind       ShippingKind
	Distance   string
	Shipping   []ShippingQuote
}

// LocatorResponse is the shaped result of a locate-by-postal-code query.
// For a single-nearest-store query Limit/Offset/Total are fixed at 1/0/1.
type LocatorResponse struct {
	Data   []StoreSummary
	Pins   []Pin
	Limit  int
	Offset int
	Total  int
}

// StoreListing is a paginated catalog page paired with the unpaginated
// total for the same filter.
type StoreListing struct {
	Stores []*Store
	Limit  int
	Offset int
	Total  int
}

package dto

type ShippingOptionResponse struct {
	EstimatedDelivery string `json:"estimatedDelivery"`
	Price             string `json:"price"`
	Description       string `json:"description"`
}

type LocatedStoreResponse struct {
	Name       string                   `json:"name"`
	City       string                   `json:"city"`
	PostalCode string                   `json:"postalCode"`
	Type       string                   `json:"type"`
	Distance   string                   `json:"distance"`
	Shipping   []ShippingOptionResponse `json:"shipping"`
}

type PinPosition struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PinResponse struct {
	Position PinPosition `json:"position"`
	Title    string      `json:"title"`
}

type LocateResponse struct {
	Status string                 `json:"status"`
	Data   []LocatedStoreResponse `json:"data"`
	Pins   []PinResponse          `json:"pins"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
	Total  int                    `json:"total"`
}

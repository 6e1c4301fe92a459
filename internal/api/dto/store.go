package dto

// StoreResponse is the public listing view of a store. Internal fields
// (catalog id, raw coordinates) are deliberately absent.
type StoreResponse struct {
	StoreName          string `json:"storeName"`
	ZipCode            string `json:"zipCode"`
	Address            string `json:"address"`
	Number             string `json:"number,omitempty"`
	Neighborhood       string `json:"neighborhood,omitempty"`
	City               string `json:"city"`
	State              string `json:"state"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	BusinessHour       string `json:"businessHour,omitempty"`
	Type               string `json:"type"`
	ShippingTimeInDays int    `json:"shippingTimeInDays"`
}

type StoreListData struct {
	Stores []StoreResponse `json:"stores"`
}

type ListStoresResponse struct {
	Status string        `json:"status"`
	Data   StoreListData `json:"data"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Total  int           `json:"total"`
}

type StoreData struct {
	Store StoreResponse `json:"store"`
}

type StoreByIDResponse struct {
	Status string    `json:"status"`
	Data   StoreData `json:"data"`
}

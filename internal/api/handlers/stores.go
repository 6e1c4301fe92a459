package handlers

import (
	"net/http"
	"strconv"

	"store-locator-service/internal/api/dto"
	"store-locator-service/internal/domain"
	"store-locator-service/internal/services"
)

// StoreHandler exposes the store catalog and the locate-by-postal-code
// pipeline over HTTP.
type StoreHandler struct {
	Locator *services.StoreLocator
	Catalog *services.StoreCatalog
}

// LocateByCEP runs the full resolution pipeline for one postal code.
func (h *StoreHandler) LocateByCEP(w http.ResponseWriter, r *http.Request) {
	cep := r.PathValue("cep")

	res, err := h.Locator.LocateByCEP(r.Context(), cep)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLocateResponse(res))
}

// List returns a catalog page. Query params: limit (default 10), offset
// (default 0).
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePagination(w, r)
	if !ok {
		return
	}

	listing, err := h.Catalog.ListAll(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(listing))
}

// ListByState returns stores in one state, case-insensitive.
func (h *StoreHandler) ListByState(w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")

	limit, offset, ok := parsePagination(w, r)
	if !ok {
		return
	}

	listing, err := h.Catalog.ListByState(r.Context(), state, limit, offset)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(listing))
}

// GetByID returns a single store.
func (h *StoreHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	store, err := h.Catalog.FindByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StoreByIDResponse{
		Status: "success",
		Data:   dto.StoreData{Store: toStoreResponse(store)},
	})
}

func parsePagination(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()

	limit = 0
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer")
			return 0, 0, false
		}
		limit = v
	}

	offset = 0
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "offset must be an integer")
			return 0, 0, false
		}
		offset = v
	}

	return limit, offset, true
}

func toStoreResponse(s *domain.Store) dto.StoreResponse {
	return dto.StoreResponse{
		StoreName:          s.Name,
		ZipCode:            s.PostalCode,
		Address:            s.Address,
		Number:             s.Number,
		Neighborhood:       s.Neighborhood,
		City:               s.City,
		State:              s.State,
		PhoneNumber:        s.Phone,
		BusinessHour:       s.BusinessHours,
		Type:               string(s.Kind),
		ShippingTimeInDays: s.HandlingDays,
	}
}

func toListResponse(listing domain.StoreListing) dto.ListStoresResponse {
	stores := make([]dto.StoreResponse, 0, len(listing.Stores))
	for _, s := range listing.Stores {
		stores = append(stores, toStoreResponse(s))
	}

	return dto.ListStoresResponse{
		Status: "success",
		Data:   dto.StoreListData{Stores: stores},
		Limit:  listing.Limit,
		Offset: listing.Offset,
		Total:  listing.Total,
	}
}

func toLocateResponse(res domain.LocatorResponse) dto.LocateResponse {
	data := make([]dto.LocatedStoreResponse, 0, len(res.Data))
	for _, s := range res.Data {
		shipping := make([]dto.ShippingOptionResponse, 0, len(s.Shipping))
		for _, opt := range s.Shipping {
			shipping = append(shipping, dto.ShippingOptionResponse{
				EstimatedDelivery: opt.EstimatedDelivery,
				Price:             opt.Price,
				Description:       opt.Description,
			})
		}

		data = append(data, dto.LocatedStoreResponse{
			Name:       s.Name,
			City:       s.City,
			PostalCode: s.PostalCode,
			Type:       string(s.Kind),
			Distance:   s.Distance,
			Shipping:   shipping,
		})
	}

	pins := make([]dto.PinResponse, 0, len(res.Pins))
	for _, p := range res.Pins {
		pins = append(pins, dto.PinResponse{
			Position: dto.PinPosition{Lat: p.Position.Lat, Lng: p.Position.Lng},
			Title:    p.Title,
		})
	}

	return dto.LocateResponse{
		Status: "success",
		Data:   data,
		Pins:   pins,
		Limit:  res.Limit,
		Offset: res.Offset,
		Total:  res.Total,
	}
}

package api

import (
	"net/http"

	"store-locator-service/internal/api/handlers"
	"store-locator-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(locator *services.StoreLocator, catalog *services.StoreCatalog) http.Handler {
	mux := http.NewServeMux()

	storeHandler := &handlers.StoreHandler{
		Locator: locator,
		Catalog: catalog,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /stores", storeHandler.List)
	mux.HandleFunc("GET /stores/cep/{cep}", storeHandler.LocateByCEP)
	mux.HandleFunc("GET /stores/id/{id}", storeHandler.GetByID)
	mux.HandleFunc("GET /stores/state/{state}", storeHandler.ListByState)

	return requestIDMiddleware(loggingMiddleware(mux))
}

package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address via /maps/api/geocode/json.
func (g *GoogleClient) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "google.Geocode")(&err)

	makeReq := func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/geocode/json", map[string]string{
			"address": address,
		})
	}

	resp, err := g.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.Coordinates{}, domain.Upstream("geocoding", "request failed", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, domain.Upstream("geocoding", "malformed response", err)
	}

	if decoded.Status == "ZERO_RESULTS" || len(decoded.Results) == 0 {
		return domain.Coordinates{}, domain.NotFound(fmt.Sprintf("address %q could not be geocoded", address))
	}
	if decoded.Status != "OK" {
		return domain.Coordinates{}, domain.Upstream("geocoding", fmt.Sprintf("status %s", decoded.Status), nil)
	}

	loc := decoded.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

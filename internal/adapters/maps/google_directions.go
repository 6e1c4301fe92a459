package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
)

const metersInKm = 1000

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Distance returns the road distance in kilometers between two points via
// /maps/api/directions/json. The provider reports meters; the value is
// converted and rounded to two decimals.
func (g *GoogleClient) Distance(ctx context.Context, origin, destination domain.Coordinates) (_ float64, err error) {
	defer obs.Time(ctx, "google.Distance")(&err)

	makeReq := func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/directions/json", map[string]string{
			"origin":      origin.LatLng(),
			"destination": destination.LatLng(),
		})
	}

	resp, err := g.doWithRetry(ctx, makeReq)
	if err != nil {
		return 0, domain.Upstream("distance", "request failed", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, domain.Upstream("distance", "malformed response", err)
	}

	if decoded.Status != "OK" || len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return 0, domain.Upstream("distance", fmt.Sprintf("no route (status %s)", decoded.Status), nil)
	}

	km := float64(decoded.Routes[0].Legs[0].Distance.Value) / metersInKm
	return math.Round(km*100) / 100, nil
}

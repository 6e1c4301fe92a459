package maps

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// GoogleClient implements the Geocoder and DistanceProvider ports using
// the Google Maps geocoding and directions APIs.
//
// It coordinates:
//   - Forward geocoding of free-text addresses
//   - Road distance between coordinate pairs (meters, converted to km)
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type GoogleClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleClient(apiKey, baseURL string, timeout time.Duration) (*GoogleClient, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}

	return &GoogleClient{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

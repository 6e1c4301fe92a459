package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
	"store-locator-service/internal/ports"
)

// Fixed parcel profile quoted for every request; dimensions are not
// user-supplied.
type parcel struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

var defaultParcel = parcel{Height: 4, Width: 12, Length: 17, Weight: 0.3}

type quoteRequest struct {
	From     postalCodeRef `json:"from"`
	To       postalCodeRef `json:"to"`
	Package  parcel        `json:"package"`
	Services string        `json:"services"`
}

type postalCodeRef struct {
	PostalCode string `json:"postal_code"`
}

type quoteOption struct {
	Name         string `json:"name"`
	DeliveryTime int    `json:"delivery_time"`
	CustomPrice  string `json:"custom_price"`
	Price        string `json:"price"`
	Error        string `json:"error"`
}

// MelhorEnvioClient implements the CarrierRates port against the Melhor
// Envio shipment calculator. Safe for concurrent use.
type MelhorEnvioClient struct {
	session *http.Client
	token   string
	baseURL string
}

func NewMelhorEnvioClient(token, baseURL string, timeout time.Duration) (*MelhorEnvioClient, error) {
	if token == "" {
		return nil, errors.New("melhor envio token is empty")
	}
	if baseURL == "" {
		baseURL = "https://www.melhorenvio.com.br"
	}

	return &MelhorEnvioClient{
		session: &http.Client{Timeout: timeout},
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *MelhorEnvioClient) Quote(ctx context.Context, fromCode, toCode string) (_ []ports.CarrierOption, err error) {
	defer obs.Time(ctx, "melhorenvio.Quote")(&err)

	payload, err := json.Marshal(quoteRequest{
		From:     postalCodeRef{PostalCode: fromCode},
		To:       postalCodeRef{PostalCode: toCode},
		Package:  defaultParcel,
		Services: "1,2",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal quote request: %w", err)
	}

	url := c.baseURL + "/api/v2/me/shipment/calculate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", "store-locator-service")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, domain.Upstream("carrier-rate", "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream("carrier-rate", "read response", err)
	}

	if resp.StatusCode >= 400 {
		return nil, domain.Upstream("carrier-rate",
			fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	// The calculator answers a JSON array of options; anything else
	// (including an object-shaped error body) is a malformed response.
	var decoded []quoteOption
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, domain.Upstream("carrier-rate", "malformed response", err)
	}

	options := make([]ports.CarrierOption, 0, len(decoded))
	for _, opt := range decoded {
		if opt.Error != "" {
			continue
		}

		raw := opt.CustomPrice
		if raw == "" {
			raw = opt.Price
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, domain.Upstream("carrier-rate",
				fmt.Sprintf("malformed response: price %q", raw), err)
		}

		options = append(options, ports.CarrierOption{
			DeliveryDays: opt.DeliveryTime,
			Price:        price,
			Name:         opt.Name,
		})
	}

	if len(options) == 0 {
		return nil, domain.Upstream("carrier-rate", "malformed response: no options", nil)
	}

	return options, nil
}

package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"store-locator-service/internal/adapters/httpx"
	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
)

// ViaCEPClient implements the PostalLookup port against the public ViaCEP
// directory. Safe for concurrent use.
type ViaCEPClient struct {
	session *http.Client
	baseURL string
}

func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	return &ViaCEPClient{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type viaCEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	// ViaCEP reports unknown codes with 200 + {"erro": true}.
	Erro bool `json:"erro"`
}

func (c *ViaCEPClient) Lookup(ctx context.Context, code string) (_ domain.PostalAddress, err error) {
	defer obs.Time(ctx, "viacep.Lookup")(&err)

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)

	resp, err := httpx.DoWithRetry(ctx, c.session, httpx.DefaultPolicy(), func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.PostalAddress{}, domain.Upstream("postal-lookup", "request failed", err)
	}
	defer resp.Body.Close()

	var decoded viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.PostalAddress{}, domain.Upstream("postal-lookup", "malformed response", err)
	}

	if decoded.Erro {
		return domain.PostalAddress{}, domain.NotFound(fmt.Sprintf("postal code %s not found", code))
	}

	return domain.PostalAddress{
		Street:       decoded.Street,
		Neighborhood: decoded.Neighborhood,
		City:         decoded.City,
		State:        decoded.State,
		PostalCode:   code,
	}, nil
}

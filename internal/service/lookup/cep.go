// internal/service/lookup/cep.go
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	xerrors "rxautos-service/internal/pkg/errors"
)

// Address is what the postal-code collaborator returns for a valid CEP.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CEPClient queries the external address-lookup collaborator (ViaCEP shape).
type CEPClient struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

func NewCEPClient(baseURL string, logger *zap.Logger) *CEPClient {
	return &CEPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// Lookup resolves an 8-digit postal code to an address. Anything but exactly
// 8 digits is invalid input; an unknown code is reported as not found so the
// caller just leaves the fields unfilled.
func (c *CEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	nums := stripMask(cep)
	if len(nums) != 8 {
		return nil, xerrors.ErrInvalidInput
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, nums)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("address lookup failed", zap.String("cep", nums), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("address lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		Logradouro string `json:"logradouro"`
		Bairro     string `json:"bairro"`
		Localidade string `json:"localidade"`
		UF         string `json:"uf"`
		Erro       bool   `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Erro {
		return nil, xerrors.ErrNotFound
	}

	return &Address{
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		State:        payload.UF,
	}, nil
}

func stripMask(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// internal/service/lookup/geo.go
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Geocoder resolves coordinates to a "City UF" display string through the
// reverse-geocoding collaborator (Nominatim shape). Every failure degrades to
// the configured default location; nothing is surfaced to the user.
type Geocoder struct {
	baseURL         string
	defaultLocation string
	httpc           *http.Client
	logger          *zap.Logger
}

func NewGeocoder(baseURL, defaultLocation string, logger *zap.Logger) *Geocoder {
	return &Geocoder{
		baseURL:         baseURL,
		defaultLocation: defaultLocation,
		httpc:           &http.Client{Timeout: 5 * time.Second},
		logger:          logger,
	}
}

func (g *Geocoder) DefaultLocation() string {
	return g.defaultLocation
}

// Resolve returns "City UF" for the coordinates, or the default location when
// the collaborator fails or reports nothing usable.
func (g *Geocoder) Resolve(ctx context.Context, lat, lon string) string {
	query := url.Values{
		"lat":    {lat},
		"lon":    {lon},
		"format": {"json"},
	}
	reqURL := fmt.Sprintf("%s/reverse?%s", g.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return g.defaultLocation
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		g.logger.Warn("reverse geocoding failed", zap.Error(err))
		return g.defaultLocation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("reverse geocoding returned bad status", zap.Int("status", resp.StatusCode))
		return g.defaultLocation
	}

	var payload struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		g.logger.Warn("reverse geocoding payload unreadable", zap.Error(err))
		return g.defaultLocation
	}

	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}
	if city == "" || payload.Address.State == "" {
		return g.defaultLocation
	}

	return city + " " + stateAbbr(payload.Address.State)
}

// stateAbbr shortens a state name for display. The federal district has no
// two-letter prefix that reads right, so it is special-cased.
func stateAbbr(state string) string {
	if strings.Contains(strings.ToLower(state), "distrito federal") {
		return "DF"
	}
	abbr := []rune(state)
	if len(abbr) > 2 {
		abbr = abbr[:2]
	}
	return strings.ToUpper(string(abbr))
}

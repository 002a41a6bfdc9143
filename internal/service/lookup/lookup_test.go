package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	xerrors "rxautos-service/internal/pkg/errors"
)

func TestCEPLookupFillsAddress(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310930/json/", r.URL.Path)
		w.Write([]byte(`{"cep":"01310-930","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer ts.Close()

	c := NewCEPClient(ts.URL, zap.NewNop())
	addr, err := c.Lookup(context.Background(), "01310-930")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestCEPLookupUnknownCodeIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer ts.Close()

	c := NewCEPClient(ts.URL, zap.NewNop())
	_, err := c.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestCEPLookupRejectsPartialInput(t *testing.T) {
	c := NewCEPClient("http://unused", zap.NewNop())
	for _, in := range []string{"", "0131093", "013109301", "abcdefgh"} {
		_, err := c.Lookup(context.Background(), in)
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput, "input %q", in)
	}
}

func TestGeocoderResolvesCityState(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`{"address":{"city":"Curitiba","state":"Paraná"}}`))
	}))
	defer ts.Close()

	g := NewGeocoder(ts.URL, "Brasília DF", zap.NewNop())
	assert.Equal(t, "Curitiba PA", g.Resolve(context.Background(), "-25.4", "-49.2"))
}

func TestGeocoderSpecialCasesFederalDistrict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"town":"Taguatinga","state":"Distrito Federal"}}`))
	}))
	defer ts.Close()

	g := NewGeocoder(ts.URL, "Brasília DF", zap.NewNop())
	assert.Equal(t, "Taguatinga DF", g.Resolve(context.Background(), "-15.8", "-48.0"))
}

func TestGeocoderDegradesToDefaultOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	g := NewGeocoder(ts.URL, "Brasília DF", zap.NewNop())
	assert.Equal(t, "Brasília DF", g.Resolve(context.Background(), "0", "0"))

	// Unreachable collaborator degrades the same way.
	g = NewGeocoder("http://127.0.0.1:1", "Brasília DF", zap.NewNop())
	assert.Equal(t, "Brasília DF", g.Resolve(context.Background(), "0", "0"))
}

func TestGeocoderDegradesWhenCityMissing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"state":"Paraná"}}`))
	}))
	defer ts.Close()

	g := NewGeocoder(ts.URL, "Brasília DF", zap.NewNop())
	assert.Equal(t, "Brasília DF", g.Resolve(context.Background(), "0", "0"))
}

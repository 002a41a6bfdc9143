// internal/handlers/lookup/lookup_handler.go
package lookup

import (
	"net/http"

	xerrors "rxautos-service/internal/pkg/errors"
	"rxautos-service/internal/pkg/response"
	lookupUsecase "rxautos-service/internal/service/lookup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LookupHandler struct {
	cepClient *lookupUsecase.CEPClient
	geocoder  *lookupUsecase.Geocoder
	logger    *zap.Logger
}

func NewLookupHandler(cepClient *lookupUsecase.CEPClient, geocoder *lookupUsecase.Geocoder, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		cepClient: cepClient,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// CEP resolves a postal code to an address for form auto-fill.
func (h *LookupHandler) CEP(c *gin.Context) {
	addr, err := h.cepClient.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case xerrors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "CEP inválido", nil)
		case xerrors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "CEP não encontrado")
		default:
			response.Error(c, http.StatusBadGateway, "address lookup unavailable", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "address retrieved", addr)
}

// Location reverse-geocodes coordinates to a "City UF" display string.
// It never fails; bad or missing coordinates yield the default location.
func (h *LookupHandler) Location(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	location := h.geocoder.DefaultLocation()
	if lat != "" && lon != "" {
		location = h.geocoder.Resolve(c.Request.Context(), lat, lon)
	}

	response.Success(c, http.StatusOK, "location resolved", gin.H{
		"location": location,
	})
}

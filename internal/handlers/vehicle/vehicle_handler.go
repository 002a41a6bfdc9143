// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"

	"rxautos-service/internal/catalog"
	vehicleDomain "rxautos-service/internal/domain/vehicle"
	"rxautos-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	engine *catalog.Engine
	logger *zap.Logger
}

func NewVehicleHandler(engine *catalog.Engine, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		engine: engine,
		logger: logger,
	}
}

// List returns the filtered, ordered catalog view.
// The deep-link parameter "marca" overrides the brand criterion when present.
func (h *VehicleHandler) List(c *gin.Context) {
	var req vehicleDomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	if marca := c.Query("marca"); marca != "" {
		req.Brand = marca
	}

	criteria := vehicleDomain.FilterCriteria{
		Brand:    req.Brand,
		MaxPrice: req.MaxPrice,
	}
	vehicles := h.engine.Search(criteria, req.SortBy)

	response.Success(c, http.StatusOK, "vehicles retrieved", vehicleDomain.ListResponse{
		Vehicles: vehicles,
		Total:    len(vehicles),
	})
}

// Brands returns the distinct brand names for the brand selector.
func (h *VehicleHandler) Brands(c *gin.Context) {
	response.Success(c, http.StatusOK, "brands retrieved", gin.H{
		"brands": h.engine.Brands(),
	})
}

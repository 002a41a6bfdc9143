// internal/domain/vehicle/entity.go
package vehicle

type FuelType string
type TransmissionType string

const (
	FuelPetrol   FuelType = "Gasolina"
	FuelFlex     FuelType = "Flex"
	FuelElectric FuelType = "Elétrico"
	FuelHybrid   FuelType = "Híbrido"

	TransmissionManual    TransmissionType = "Manual"
	TransmissionAutomatic TransmissionType = "Automático"
)

// Vehicle is one record of the fixed showroom catalog. Records are seeded at
// startup and never created or destroyed at runtime.
type Vehicle struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Price        string           `json:"price"`
	NumericPrice *int             `json:"numeric_price,omitempty"`
	Mileage      string           `json:"mileage"`
	Transmission TransmissionType `json:"transmission"`
	Fuel         FuelType         `json:"fuel"`
	Location     string           `json:"location"`
	Image        string           `json:"image"`
}

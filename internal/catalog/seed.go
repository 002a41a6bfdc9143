// internal/catalog/seed.go
package catalog

import "rxautos-service/internal/domain/vehicle"

func intPtr(v int) *int { return &v }

// Seed returns the fixed showroom catalog. Prices are kept both as the
// display string and as a plain integer in whole reais.
func Seed() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{
			ID:           1,
			Name:         "BMW iX1",
			Brand:        "BMW",
			Model:        "iX1",
			Year:         2024,
			Price:        "R$ 429.950",
			NumericPrice: intPtr(429950),
			Mileage:      "0 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelElectric,
			Location:     "São Paulo, SP",
			Image:        "/assets/bmw-ix1.png",
		},
		{
			ID:           2,
			Name:         "Toyota Camry",
			Brand:        "Toyota",
			Model:        "Camry",
			Year:         2023,
			Price:        "R$ 289.990",
			NumericPrice: intPtr(289990),
			Mileage:      "15.000 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelHybrid,
			Location:     "Rio de Janeiro, RJ",
			Image:        "/assets/bmw-ix1.png",
		},
		{
			ID:           3,
			Name:         "Honda Civic",
			Brand:        "Honda",
			Model:        "Civic",
			Year:         2023,
			Price:        "R$ 244.900",
			NumericPrice: intPtr(244900),
			Mileage:      "0 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelFlex,
			Location:     "Brasília, DF",
			Image:        "/assets/bmw-ix1.png",
		},
		{
			ID:           4,
			Name:         "Volkswagen Golf GTI",
			Brand:        "Volkswagen",
			Model:        "Golf GTI",
			Year:         2024,
			Price:        "R$ 349.990",
			NumericPrice: intPtr(349990),
			Mileage:      "0 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelPetrol,
			Location:     "Curitiba, PR",
			Image:        "/assets/bmw-ix1.png",
		},
		{
			ID:           5,
			Name:         "Mercedes-Benz C300",
			Brand:        "Mercedes-Benz",
			Model:        "C300",
			Year:         2024,
			Price:        "R$ 399.900",
			NumericPrice: intPtr(399900),
			Mileage:      "5.000 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelPetrol,
			Location:     "Belo Horizonte, MG",
			Image:        "/assets/bmw-ix1.png",
		},
		{
			ID:           6,
			Name:         "Audi Q3",
			Brand:        "Audi",
			Model:        "Q3",
			Year:         2024,
			Price:        "R$ 379.990",
			NumericPrice: intPtr(379990),
			Mileage:      "0 km",
			Transmission: vehicle.TransmissionAutomatic,
			Fuel:         vehicle.FuelPetrol,
			Location:     "Porto Alegre, RS",
			Image:        "/assets/bmw-ix1.png",
		},
	}
}

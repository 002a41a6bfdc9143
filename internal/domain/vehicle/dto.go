// internal/domain/vehicle/dto.go
package vehicle

// SortKey selects the comparator used to order a vehicle listing.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByBrand    SortKey = "brand"
	SortByModel    SortKey = "model"
	SortByYear     SortKey = "year"
	SortByPrice    SortKey = "price"
	SortByLocation SortKey = "location"
)

// DefaultSortKey is applied when a listing request names no sort field.
const DefaultSortKey = SortByName

// ValidSortKey reports whether k names a known comparator.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByName, SortByBrand, SortByModel, SortByYear, SortByPrice, SortByLocation:
		return true
	}
	return false
}

// FilterCriteria narrows the catalog view. Zero values mean "no constraint".
type FilterCriteria struct {
	Brand    string `form:"brand"`
	MaxPrice int    `form:"max_price"`
}

// ListRequest is the query surface of the vehicle listing endpoint.
type ListRequest struct {
	Brand    string  `form:"brand"`
	MaxPrice int     `form:"max_price" binding:"omitempty,min=0"`
	SortBy   SortKey `form:"sort_by"`
}

// ListResponse carries the filtered, ordered view plus its size so clients can
// render an explicit "no results" state.
type ListResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
	Total    int       `json:"total"`
}

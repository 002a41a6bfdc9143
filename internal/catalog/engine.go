// internal/catalog/engine.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rxautos-service/internal/domain/vehicle"
)

// Engine derives the displayed vehicle list from the full catalog, the active
// filter criteria and the active sort key. The catalog slice is read-only;
// every operation returns a fresh slice.
type Engine struct {
	catalog []vehicle.Vehicle
	locale  language.Tag
}

func NewEngine(catalog []vehicle.Vehicle) *Engine {
	return &Engine{
		catalog: catalog,
		locale:  language.BrazilianPortuguese,
	}
}

// Catalog returns a copy of the full seed list.
func (e *Engine) Catalog() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Brands returns the distinct brand names in catalog order, for the brand
// selector.
func (e *Engine) Brands() []string {
	seen := make(map[string]bool, len(e.catalog))
	var brands []string
	for _, v := range e.catalog {
		key := strings.ToLower(v.Brand)
		if !seen[key] {
			seen[key] = true
			brands = append(brands, v.Brand)
		}
	}
	return brands
}

// ApplyFilter keeps the records satisfying every active criterion, preserving
// catalog order. A brand matches case-insensitively and exactly, never by
// substring. A price cap never excludes records with an unknown price. With no
// criteria set the full catalog comes back unchanged.
func (e *Engine) ApplyFilter(criteria vehicle.FilterCriteria) []vehicle.Vehicle {
	filtered := make([]vehicle.Vehicle, 0, len(e.catalog))
	for _, v := range e.catalog {
		if criteria.Brand != "" && !strings.EqualFold(v.Brand, criteria.Brand) {
			continue
		}
		if criteria.MaxPrice > 0 && v.NumericPrice != nil && *v.NumericPrice > criteria.MaxPrice {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// Sort orders a copy of list by the given key and returns it; the input is
// never mutated. String fields compare under pt-BR collation, year and price
// numerically. Ties keep their original relative order.
func (e *Engine) Sort(list []vehicle.Vehicle, key vehicle.SortKey) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(list))
	copy(out, list)

	if !vehicle.ValidSortKey(key) {
		key = vehicle.DefaultSortKey
	}

	col := collate.New(e.locale)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case vehicle.SortByBrand:
			return col.CompareString(a.Brand, b.Brand) < 0
		case vehicle.SortByModel:
			return col.CompareString(a.Model, b.Model) < 0
		case vehicle.SortByYear:
			return a.Year < b.Year
		case vehicle.SortByPrice:
			return lessByNumericPrice(a, b)
		case vehicle.SortByLocation:
			return col.CompareString(a.Location, b.Location) < 0
		default:
			return col.CompareString(a.Name, b.Name) < 0
		}
	})
	return out
}

// lessByNumericPrice compares the stored integer price. Records without one
// sort after priced records and keep their relative order among themselves.
func lessByNumericPrice(a, b vehicle.Vehicle) bool {
	switch {
	case a.NumericPrice == nil:
		return false
	case b.NumericPrice == nil:
		return true
	default:
		return *a.NumericPrice < *b.NumericPrice
	}
}

// Search is the combined pipeline behind the listing endpoint: filter, then
// order. An external brand signal (deep link) is applied by the caller simply
// by overriding criteria.Brand before calling.
func (e *Engine) Search(criteria vehicle.FilterCriteria, key vehicle.SortKey) []vehicle.Vehicle {
	return e.Sort(e.ApplyFilter(criteria), key)
}

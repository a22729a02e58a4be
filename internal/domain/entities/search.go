package entities

import "sort"

// SortOption is a client-side ordering applied to an already-fetched result
// set. Changing it never re-fetches.
type SortOption string

const (
	SortNameAsc    SortOption = "NAME_ASC"
	SortNameDesc   SortOption = "NAME_DESC"
	SortRatingHigh SortOption = "RATING_HIGH"
	SortRatingLow  SortOption = "RATING_LOW"
	SortPriceLow   SortOption = "PRICE_LOW"
	SortPriceHigh  SortOption = "PRICE_HIGH"
)

// DisplayName returns the label shown in the sort menu
func (o SortOption) DisplayName() string {
	switch o {
	case SortNameAsc:
		return "Nombre (A-Z)"
	case SortNameDesc:
		return "Nombre (Z-A)"
	case SortRatingHigh:
		return "Mayor calificación"
	case SortRatingLow:
		return "Menor calificación"
	case SortPriceLow:
		return "Menor precio"
	case SortPriceHigh:
		return "Mayor precio"
	default:
		return string(o)
	}
}

// FilterOptions narrows a search. Zero value means no filtering.
type FilterOptions struct {
	MinRating float64
	// MaxPrice caps the clinic's average service price. 0 disables the cap.
	MaxPrice float64
}

// IsZero reports whether no filter is active
func (f FilterOptions) IsZero() bool {
	return f.MinRating == 0 && f.MaxPrice == 0
}

// SortResults orders result rows in place according to the option.
// PRICE_LOW sorts by each clinic's cheapest service ascending, PRICE_HIGH by
// its most expensive service descending; clinics without services sort as 0.
func SortResults(results []VeterinaryWithServices, option SortOption) {
	switch option {
	case SortNameAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Veterinary.Name < results[j].Veterinary.Name
		})
	case SortNameDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Veterinary.Name > results[j].Veterinary.Name
		})
	case SortRatingHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Veterinary.Rating > results[j].Veterinary.Rating
		})
	case SortRatingLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Veterinary.Rating < results[j].Veterinary.Rating
		})
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return minPrice(results[i].Services) < minPrice(results[j].Services)
		})
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return maxPrice(results[i].Services) > maxPrice(results[j].Services)
		})
	}
}

func minPrice(services []VeterinaryService) float64 {
	if len(services) == 0 {
		return 0
	}
	min := services[0].Price
	for _, s := range services[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}

func maxPrice(services []VeterinaryService) float64 {
	if len(services) == 0 {
		return 0
	}
	max := services[0].Price
	for _, s := range services[1:] {
		if s.Price > max {
			max = s.Price
		}
	}
	return max
}

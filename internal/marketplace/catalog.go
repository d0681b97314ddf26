package marketplace

import (
	"sort"
	"strings"
)

// Sort modes accepted by the catalog.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortDADesc    = "da_desc"
	SortDRDesc    = "dr_desc"
)

// Query narrows and orders the catalog. Every bound is optional and
// inclusive; nil means unconstrained on that side.
type Query struct {
	Search   string
	MinPrice *int
	MaxPrice *int
	MinDA    *int
	MaxDA    *int
	MinDR    *int
	MaxDR    *int
	Sort     string
}

// Approved returns the publicly visible subset of services.
func Approved(services []Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.IsApproved {
			out = append(out, s)
		}
	}
	return out
}

// Apply filters and sorts services. Search is a case-insensitive substring
// match across title, description and website URL. Sorting is stable, so
// ties keep collection order; "newest" is collection order itself.
func (q Query) Apply(services []Service) []Service {
	needle := strings.ToLower(q.Search)

	out := make([]Service, 0, len(services))
	for _, s := range services {
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Title), needle) &&
			!strings.Contains(strings.ToLower(s.Description), needle) &&
			!strings.Contains(strings.ToLower(s.WebsiteURL), needle) {
			continue
		}
		if !within(s.Price, q.MinPrice, q.MaxPrice) {
			continue
		}
		if !within(s.DA, q.MinDA, q.MaxDA) {
			continue
		}
		if !within(s.DR, q.MinDR, q.MaxDR) {
			continue
		}
		out = append(out, s)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortDADesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DA > out[j].DA })
	case SortDRDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DR > out[j].DR })
	}
	return out
}

func within(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

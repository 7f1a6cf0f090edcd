package listing

import "strings"

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortNameAsc   SortKey = "nameAsc"
)

// ParseSortKey accepts the canonical keys and the legacy select values
// ("price-asc", "price-desc", "name"). Anything else sorts as received.
func ParseSortKey(s string) SortKey {
	switch strings.TrimSpace(s) {
	case "priceAsc", "price-asc":
		return SortPriceAsc
	case "priceDesc", "price-desc":
		return SortPriceDesc
	case "nameAsc", "name":
		return SortNameAsc
	default:
		return SortDefault
	}
}

// State is the query a single venue grid is rendered from. Changing SearchText or
// SortKey must reset Page to 1; that is up to the caller.
type State struct {
	SearchText string  `json:"searchText"`
	SortKey    SortKey `json:"sortKey"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
}

// Normalize fills in defaults and clamps page and page size into range.
func (s State) Normalize(defaultPageSize, maxPageSize int) State {
	if s.Page < 1 {
		s.Page = 1
	}

	if s.PageSize <= 0 {
		s.PageSize = defaultPageSize
	}

	if maxPageSize > 0 && s.PageSize > maxPageSize {
		s.PageSize = maxPageSize
	}

	if s.SortKey == "" {
		s.SortKey = SortDefault
	}

	return s
}

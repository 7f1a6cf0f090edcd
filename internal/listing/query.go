// Package listing derives the visible page of venues from the full collection.
//
// None of the functions modify their input; each returns a fresh slice.
package listing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kirinyoku/holidaze/internal/domain"
)

type Result struct {
	Items      []domain.Venue `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	HasPrev    bool           `json:"hasPrev"`
	HasNext    bool           `json:"hasNext"`
}

// Filter keeps venues whose name contains searchText, ignoring case.
func Filter(venues []domain.Venue, searchText string) []domain.Venue {
	if searchText == "" {
		return slices.Clone(venues)
	}

	needle := strings.ToLower(searchText)

	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			out = append(out, v)
		}
	}

	return out
}

// Sort returns a stably sorted copy of venues.
func Sort(venues []domain.Venue, key SortKey) []domain.Venue {
	out := slices.Clone(venues)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Venue) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Venue) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameAsc:
		slices.SortStableFunc(out, func(a, b domain.Venue) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return out
}

// Paginate returns items [(page-1)*pageSize, page*pageSize). A page past the end is
// an empty result.
func Paginate(venues []domain.Venue, page, pageSize int) []domain.Venue {
	if page < 1 || pageSize <= 0 {
		return []domain.Venue{}
	}

	if page > pageCount(len(venues), pageSize) {
		return []domain.Venue{}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(venues))

	return slices.Clone(venues[start:end])
}

// Query runs filter, sort and paginate in that order.
func Query(venues []domain.Venue, state State) []domain.Venue {
	return Run(venues, state).Items
}

// Run is Query plus the counters the pagination controls need.
func Run(venues []domain.Venue, state State) Result {
	matched := Sort(Filter(venues, state.SearchText), state.SortKey)

	res := Result{
		Items:    Paginate(matched, state.Page, state.PageSize),
		Total:    len(matched),
		Page:     state.Page,
		PageSize: state.PageSize,
	}

	if state.PageSize > 0 {
		res.TotalPages = pageCount(len(matched), state.PageSize)
		res.HasNext = state.Page < res.TotalPages
	}
	res.HasPrev = state.Page > 1

	return res
}

// pageCount is ceil(n/pageSize) without overflowing for any positive pageSize.
func pageCount(n, pageSize int) int {
	if n == 0 {
		return 0
	}

	return (n-1)/pageSize + 1
}

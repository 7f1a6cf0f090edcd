package bookings

import (
	"cmp"
	"slices"
	"time"

	"github.com/kirinyoku/holidaze/internal/domain"
)

// Split groups a customer's bookings for the profile page. Bookings that have
// started but not ended belong to neither group.
type Split struct {
	Upcoming  []domain.BookingWithVenue `json:"upcoming"`
	Completed []domain.BookingWithVenue `json:"completed"`
}

// SplitByTime sorts bookings by start date and splits them around now.
func SplitByTime(bookings []domain.BookingWithVenue, now time.Time) Split {
	sorted := slices.Clone(bookings)
	slices.SortStableFunc(sorted, func(a, b domain.BookingWithVenue) int {
		return cmp.Compare(a.DateFrom.UnixNano(), b.DateFrom.UnixNano())
	})

	out := Split{
		Upcoming:  []domain.BookingWithVenue{},
		Completed: []domain.BookingWithVenue{},
	}

	for _, b := range sorted {
		switch {
		case b.DateFrom.After(now):
			out.Upcoming = append(out.Upcoming, b)
		case b.DateTo.Before(now):
			out.Completed = append(out.Completed, b)
		}
	}

	return out
}

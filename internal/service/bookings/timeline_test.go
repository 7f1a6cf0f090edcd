package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kirinyoku/holidaze/internal/domain"
)

func booking(id, from, to string) domain.BookingWithVenue {
	f, _ := time.Parse(time.DateOnly, from)
	t, _ := time.Parse(time.DateOnly, to)
	return domain.BookingWithVenue{Booking: domain.Booking{ID: id, DateFrom: f, DateTo: t}}
}

func bookingIDs(bs []domain.BookingWithVenue) []string {
	out := []string{}
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func TestSplitByTime(t *testing.T) {
	now, _ := time.Parse(time.DateOnly, "2025-06-15")

	in := []domain.BookingWithVenue{
		booking("later", "2025-08-01", "2025-08-03"),
		booking("past", "2025-05-01", "2025-05-03"),
		booking("ongoing", "2025-06-14", "2025-06-16"),
		booking("soon", "2025-06-20", "2025-06-21"),
		booking("older", "2025-01-01", "2025-01-03"),
	}

	got := SplitByTime(in, now)

	assert.Equal(t, []string{"soon", "later"}, bookingIDs(got.Upcoming))
	assert.Equal(t, []string{"older", "past"}, bookingIDs(got.Completed))
	assert.Equal(t, "later", in[0].ID)
}

func TestSplitByTimeEmpty(t *testing.T) {
	got := SplitByTime(nil, time.Now())
	assert.NotNil(t, got.Upcoming)
	assert.NotNil(t, got.Completed)
}

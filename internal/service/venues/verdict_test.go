package venues

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/domain"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestEvaluate(t *testing.T) {
	venue := domain.Venue{ID: "v1", MaxGuests: 2}
	existing := []domain.DateRange{{From: date("2025-06-01"), To: date("2025-06-05")}}

	from := date("2025-06-05")
	v := Evaluate(venue, existing, availability.Candidate{From: &from}, 3)

	assert.False(t, v.CanSubmit)
	assert.Equal(t, "Selected start date is already booked.", v.DateError)
	assert.Equal(t, "Max 2 guests allowed.", v.GuestError)
	assert.Equal(t, "GuestCountExceeded", v.Kind)
	assert.Equal(t, v.GuestError, v.Reason)

	v = Evaluate(venue, existing, availability.Candidate{From: &from}, 2)
	assert.Equal(t, "IncompleteDateRange", v.Kind)
	assert.Empty(t, v.GuestError)

	v = Evaluate(venue, existing, availability.NewCandidate(date("2025-06-06"), date("2025-06-08")), 2)
	assert.True(t, v.CanSubmit)
	assert.Empty(t, v.Kind)
	assert.Empty(t, v.DateError)
}

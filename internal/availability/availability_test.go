package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/holidaze/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(from, to string) domain.DateRange {
	return domain.DateRange{From: day(from), To: day(to)}
}

func ptr(t time.Time) *time.Time { return &t }

func TestNormalize(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "a", DateFrom: day("2025-06-01"), DateTo: day("2025-06-05")},
		{ID: "bad", DateFrom: day("2025-07-10"), DateTo: day("2025-07-01")},
		{ID: "b", DateFrom: day("2025-05-01"), DateTo: day("2025-05-01")},
	}

	got := Normalize(bookings)

	require.Len(t, got, 2)
	assert.Equal(t, rng("2025-06-01", "2025-06-05"), got[0])
	assert.Equal(t, rng("2025-05-01", "2025-05-01"), got[1])
	assert.Equal(t, got, Unavailable(bookings))
}

func TestNormalizeEmpty(t *testing.T) {
	got := Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOverlaps(t *testing.T) {
	existing := []domain.DateRange{rng("2025-06-01", "2025-06-05")}

	tests := []struct {
		name      string
		candidate domain.DateRange
		want      bool
	}{
		{"touching end", rng("2025-06-05", "2025-06-10"), true},
		{"touching start", rng("2025-05-25", "2025-06-01"), true},
		{"adjacent after", rng("2025-06-06", "2025-06-10"), false},
		{"adjacent before", rng("2025-05-25", "2025-05-31"), false},
		{"inside", rng("2025-06-02", "2025-06-03"), true},
		{"covering", rng("2025-05-01", "2025-07-01"), true},
		{"single instant inside", rng("2025-06-03", "2025-06-03"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(existing, tt.candidate))
		})
	}
}

func TestOverlapsSkipsInvalidExisting(t *testing.T) {
	existing := []domain.DateRange{rng("2025-06-10", "2025-06-01")}
	assert.False(t, Overlaps(existing, rng("2025-06-01", "2025-06-10")))
}

func TestOverlapsSymmetricAndReflexive(t *testing.T) {
	ranges := []domain.DateRange{
		rng("2025-06-01", "2025-06-05"),
		rng("2025-06-05", "2025-06-10"),
		rng("2025-06-06", "2025-06-10"),
		rng("2025-01-01", "2025-12-31"),
		rng("2025-03-03", "2025-03-03"),
	}

	for _, a := range ranges {
		assert.True(t, Overlaps([]domain.DateRange{a}, a))
		for _, b := range ranges {
			assert.Equal(t,
				Overlaps([]domain.DateRange{a}, b),
				Overlaps([]domain.DateRange{b}, a),
				"a=%v b=%v", a, b,
			)
		}
	}
}

func TestProvisional(t *testing.T) {
	from, to := day("2025-06-01"), day("2025-06-05")

	r, ok := Candidate{From: &from}.Provisional()
	require.True(t, ok)
	assert.Equal(t, domain.DateRange{From: from, To: from}, r)

	r, ok = Candidate{To: &to}.Provisional()
	require.True(t, ok)
	assert.Equal(t, domain.DateRange{From: to, To: to}, r)

	_, ok = Candidate{}.Provisional()
	assert.False(t, ok)
}

func TestCheckCandidate(t *testing.T) {
	existing := []domain.DateRange{rng("2025-06-01", "2025-06-05")}

	err := CheckCandidate(existing, Candidate{From: ptr(day("2025-06-03"))})
	require.Error(t, err)
	assert.Equal(t, "Selected start date is already booked.", err.Error())

	err = CheckCandidate(existing, Candidate{To: ptr(day("2025-06-01"))})
	require.Error(t, err)
	assert.Equal(t, "Selected end date is already booked.", err.Error())

	err = CheckCandidate(existing, NewCandidate(day("2025-05-20"), day("2025-06-02")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDateRangeOverlap))

	assert.NoError(t, CheckCandidate(existing, Candidate{}))
	assert.NoError(t, CheckCandidate(existing, Candidate{From: ptr(day("2025-06-06"))}))
}

func TestIsGuestCountValid(t *testing.T) {
	venue := domain.Venue{MaxGuests: 4}

	assert.False(t, IsGuestCountValid(0, venue))
	assert.True(t, IsGuestCountValid(1, venue))
	assert.True(t, IsGuestCountValid(4, venue))
	assert.False(t, IsGuestCountValid(5, venue))
}

func TestCanSubmitBooking(t *testing.T) {
	venue := domain.Venue{ID: "v1", MaxGuests: 4}
	existing := []domain.DateRange{rng("2025-06-01", "2025-06-05")}

	tests := []struct {
		name      string
		candidate Candidate
		guests    int
		wantKind  Kind
		wantErr   error
	}{
		{
			name:      "ok",
			candidate: NewCandidate(day("2025-06-06"), day("2025-06-10")),
			guests:    2,
		},
		{
			name:      "guests exceeded with valid dates",
			candidate: NewCandidate(day("2025-06-06"), day("2025-06-10")),
			guests:    5,
			wantKind:  KindGuestCountExceeded,
			wantErr:   ErrGuestCountExceeded,
		},
		{
			name:      "guests exceeded with overlapping dates",
			candidate: NewCandidate(day("2025-06-02"), day("2025-06-03")),
			guests:    5,
			wantKind:  KindGuestCountExceeded,
			wantErr:   ErrGuestCountExceeded,
		},
		{
			name:      "only from",
			candidate: Candidate{From: ptr(day("2025-06-06"))},
			guests:    2,
			wantKind:  KindIncompleteDateRange,
			wantErr:   ErrIncompleteDateRange,
		},
		{
			name:      "only to",
			candidate: Candidate{To: ptr(day("2025-06-06"))},
			guests:    2,
			wantKind:  KindIncompleteDateRange,
			wantErr:   ErrIncompleteDateRange,
		},
		{
			name:      "overlap",
			candidate: NewCandidate(day("2025-06-05"), day("2025-06-10")),
			guests:    2,
			wantKind:  KindDateRangeOverlap,
			wantErr:   ErrDateRangeOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanSubmitBooking(tt.candidate, existing, tt.guests, venue)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestCanSubmitBookingIdempotent(t *testing.T) {
	venue := domain.Venue{MaxGuests: 2}
	existing := []domain.DateRange{rng("2025-06-01", "2025-06-05")}
	c := NewCandidate(day("2025-06-04"), day("2025-06-08"))

	first := CanSubmitBooking(c, existing, 2, venue)
	second := CanSubmitBooking(c, existing, 2, venue)

	assert.Equal(t, first, second)
}

func TestGuestReason(t *testing.T) {
	venue := domain.Venue{MaxGuests: 3}

	err := CheckGuests(4, venue)
	require.Error(t, err)
	assert.Equal(t, "Max 3 guests allowed.", err.Error())

	assert.NoError(t, CheckGuests(3, venue))
}

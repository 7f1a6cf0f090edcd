package bookings

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
)

func newTestService(now time.Time) *Service {
	s := New(nil, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }
	return s
}

func at(s string) *time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return &t
}

func TestCheckDates(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-06-10T15:04:05Z")
	s := newTestService(now)

	assert.NoError(t, s.checkDates(CreateInput{DateFrom: at("2025-06-10"), DateTo: at("2025-06-12")}))
	assert.NoError(t, s.checkDates(CreateInput{DateFrom: at("2025-06-11")}))
	assert.NoError(t, s.checkDates(CreateInput{}))

	assert.ErrorIs(t,
		s.checkDates(CreateInput{DateFrom: at("2025-06-12"), DateTo: at("2025-06-11")}),
		ErrInvalidDateRange,
	)
	assert.ErrorIs(t,
		s.checkDates(CreateInput{DateFrom: at("2025-06-09"), DateTo: at("2025-06-11")}),
		ErrDateInPast,
	)
}

func TestCreateRejectsBeforeTouchingStore(t *testing.T) {
	s := newTestService(time.Now())

	_, err := s.Create(context.Background(), CreateInput{VenueID: "0b4e3e38-9c2b-4c4b-8d41-3f0e7c1a2b3c"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCustomer)

	_, err = s.Create(context.Background(), CreateInput{Customer: "kari", VenueID: "not-a-uuid"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCancelRejectsMalformedID(t *testing.T) {
	s := newTestService(time.Now())

	err := s.Cancel(context.Background(), "kari", "nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRateLimitedError(t *testing.T) {
	err := RateLimitedError{RetryAfter: 2 * time.Second}
	assert.Equal(t, "rate limited, retry in 2s", err.Error())
}

// memStore keeps venues and bookings in memory. RunTx calls fn once with a nil
// transaction.
type memStore struct {
	mu       sync.Mutex
	venues   map[string]domain.Venue
	bookings []domain.Booking
	txs      int
}

func newMemStore(venues ...domain.Venue) *memStore {
	m := &memStore{venues: make(map[string]domain.Venue)}
	for _, v := range venues {
		m.venues[v.ID] = v
	}
	return m
}

func (m *memStore) RunTx(
	ctx context.Context,
	_ *pgx.TxOptions,
	fn func(ctx context.Context, tx postgresrepo.DB) error,
) error {
	m.mu.Lock()
	m.txs++
	m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *memStore) LockVenue(_ context.Context, _ postgresrepo.DB, venueID string) (*domain.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.venues[venueID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (m *memStore) VenueBookings(_ context.Context, _ postgresrepo.DB, venueID string) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Booking
	for _, b := range m.bookings {
		if b.VenueID == venueID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) InsertBooking(_ context.Context, _ postgresrepo.DB, b domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memStore) GetBooking(_ context.Context, _ postgresrepo.DB, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) DeleteBooking(_ context.Context, _ postgresrepo.DB, id, customer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.bookings {
		if b.ID == id && b.Customer.Name == customer {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memStore) CustomerBookings(_ context.Context, customer string) ([]domain.BookingWithVenue, error) {
	return nil, nil
}

const cabinID = "0b4e3e38-9c2b-4c4b-8d41-3f0e7c1a2b3c"

func TestCreate(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-06-10T12:00:00Z")
	cabin := domain.Venue{ID: cabinID, Name: "Cabin", MaxGuests: 4}
	taken := domain.Booking{
		ID:       "b1",
		VenueID:  cabinID,
		DateFrom: *at("2025-07-01"),
		DateTo:   *at("2025-07-05"),
		Guests:   2,
		Customer: domain.Customer{Name: "ola"},
	}

	tests := []struct {
		name     string
		in       CreateInput
		wantErr  error
		wantKind availability.Kind
	}{
		{
			name: "free dates",
			in:   CreateInput{DateFrom: at("2025-07-06"), DateTo: at("2025-07-08"), Guests: 4},
		},
		{
			name:     "overlaps existing booking",
			in:       CreateInput{DateFrom: at("2025-07-03"), DateTo: at("2025-07-07"), Guests: 2},
			wantErr:  availability.ErrDateRangeOverlap,
			wantKind: availability.KindDateRangeOverlap,
		},
		{
			name:     "starts on the last booked day",
			in:       CreateInput{DateFrom: at("2025-07-05"), DateTo: at("2025-07-06"), Guests: 1},
			wantErr:  availability.ErrDateRangeOverlap,
			wantKind: availability.KindDateRangeOverlap,
		},
		{
			name:     "one guest too many",
			in:       CreateInput{DateFrom: at("2025-07-06"), DateTo: at("2025-07-08"), Guests: 5},
			wantErr:  availability.ErrGuestCountExceeded,
			wantKind: availability.KindGuestCountExceeded,
		},
		{
			name:     "too many guests on taken dates",
			in:       CreateInput{DateFrom: at("2025-07-02"), DateTo: at("2025-07-03"), Guests: 5},
			wantErr:  availability.ErrGuestCountExceeded,
			wantKind: availability.KindGuestCountExceeded,
		},
		{
			name:     "missing end date",
			in:       CreateInput{DateFrom: at("2025-07-06"), Guests: 1},
			wantErr:  availability.ErrIncompleteDateRange,
			wantKind: availability.KindIncompleteDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(cabin)
			store.bookings = []domain.Booking{taken}

			s := NewWithStore(store, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
			s.now = func() time.Time { return now }

			tt.in.Customer = "kari"
			tt.in.VenueID = cabinID

			got, err := s.Create(context.Background(), tt.in, "")
			assert.Equal(t, 1, store.txs)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				kind, ok := availability.KindOf(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantKind, kind)

				assert.Nil(t, got)
				assert.Len(t, store.bookings, 1)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, cabinID, got.VenueID)
			assert.Equal(t, "kari", got.Customer.Name)
			assert.Equal(t, tt.in.Guests, got.Guests)
			assert.True(t, got.DateFrom.Equal(*tt.in.DateFrom))
			assert.True(t, got.DateTo.Equal(*tt.in.DateTo))

			require.Len(t, store.bookings, 2)
			assert.Equal(t, got.ID, store.bookings[1].ID)
		})
	}
}

func TestCreateUnknownVenue(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-06-10T12:00:00Z")
	s := NewWithStore(newMemStore(), nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }

	_, err := s.Create(context.Background(), CreateInput{
		Customer: "kari",
		VenueID:  cabinID,
		DateFrom: at("2025-07-06"),
		DateTo:   at("2025-07-08"),
		Guests:   1,
	}, "")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateThenCancel(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-06-10T12:00:00Z")
	store := newMemStore(domain.Venue{ID: cabinID, MaxGuests: 2})
	s := NewWithStore(store, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }

	in := CreateInput{Customer: "kari", VenueID: cabinID, DateFrom: at("2025-07-06"), DateTo: at("2025-07-08"), Guests: 2}

	b, err := s.Create(context.Background(), in, "")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), in, "")
	assert.ErrorIs(t, err, availability.ErrDateRangeOverlap)

	assert.ErrorIs(t, s.Cancel(context.Background(), "ola", b.ID), ErrBookingNotFound)
	require.NoError(t, s.Cancel(context.Background(), "kari", b.ID))

	_, err = s.Create(context.Background(), in, "")
	assert.NoError(t, err)
}

package venues

import (
	"context"

	"github.com/kirinyoku/holidaze/internal/domain"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
)

// Store is the read side of the database the venue pages need.
type Store interface {
	AllVenues(ctx context.Context) ([]domain.Venue, error)
	Venue(ctx context.Context, id string) (*domain.Venue, error)
	VenueBookings(ctx context.Context, venueID string) ([]domain.Booking, error)
}

type pgStore struct {
	*postgresrepo.Store
}

func (s pgStore) AllVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.Venues().List(ctx)
}

func (s pgStore) Venue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.Venues().Get(ctx, id)
}

func (s pgStore) VenueBookings(ctx context.Context, venueID string) ([]domain.Booking, error) {
	return s.Bookings().ListByVenue(ctx, venueID)
}

package bookings

import (
	"context"

	"github.com/kirinyoku/holidaze/internal/domain"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
	"github.com/kirinyoku/holidaze/internal/uow"
)

// Store is the part of the database the booking service works with. The tx
// argument is the transaction handed to the RunTx callback.
type Store interface {
	uow.TxRunner
	LockVenue(ctx context.Context, tx postgresrepo.DB, venueID string) (*domain.Venue, error)
	VenueBookings(ctx context.Context, tx postgresrepo.DB, venueID string) ([]domain.Booking, error)
	InsertBooking(ctx context.Context, tx postgresrepo.DB, b domain.Booking) error
	GetBooking(ctx context.Context, tx postgresrepo.DB, id string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, tx postgresrepo.DB, id, customer string) error
	CustomerBookings(ctx context.Context, customer string) ([]domain.BookingWithVenue, error)
}

type pgStore struct {
	*postgresrepo.Store
}

func (s pgStore) LockVenue(ctx context.Context, tx postgresrepo.DB, venueID string) (*domain.Venue, error) {
	return s.Venues().With(tx).GetForUpdate(ctx, venueID)
}

func (s pgStore) VenueBookings(ctx context.Context, tx postgresrepo.DB, venueID string) ([]domain.Booking, error) {
	return s.Bookings().With(tx).ListByVenue(ctx, venueID)
}

func (s pgStore) InsertBooking(ctx context.Context, tx postgresrepo.DB, b domain.Booking) error {
	return s.Bookings().With(tx).Create(ctx, b)
}

func (s pgStore) GetBooking(ctx context.Context, tx postgresrepo.DB, id string) (*domain.Booking, error) {
	return s.Bookings().With(tx).Get(ctx, id)
}

func (s pgStore) DeleteBooking(ctx context.Context, tx postgresrepo.DB, id, customer string) error {
	return s.Bookings().With(tx).Delete(ctx, id, customer)
}

func (s pgStore) CustomerBookings(ctx context.Context, customer string) ([]domain.BookingWithVenue, error) {
	return s.Bookings().ListByCustomer(ctx, customer)
}

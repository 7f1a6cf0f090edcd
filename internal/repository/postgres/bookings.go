package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListByVenue lists the bookings of a venue ordered by start date, with the
// customer's public profile attached.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - venueID: venue to list bookings for.
//
// Returns:
//   - []domain.Booking: bookings, never nil.
//   - error: any database error.
func (r *BookingRepo) ListByVenue(ctx context.Context, venueID string) ([]domain.Booking, error) {
	const op = "postgres.BookingRepo.ListByVenue"

	rows, err := r.handle().Query(ctx,
		`SELECT b.id, b.venue_id, b.date_from, b.date_to, b.guests, b.created_at, b.updated_at,
		        p.name, p.email, p.avatar_url, p.avatar_alt
		 FROM bookings b
		 JOIN profiles p ON p.name = b.customer
		 WHERE b.venue_id = $1
		 ORDER BY b.date_from, b.id`,
		venueID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.VenueID, &b.DateFrom, &b.DateTo, &b.Guests, &b.Created, &b.Updated,
			&b.Customer.Name, &b.Customer.Email, &b.Customer.Avatar.URL, &b.Customer.Avatar.Alt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListByCustomer lists a customer's bookings with the booked venue attached.
func (r *BookingRepo) ListByCustomer(ctx context.Context, customer string) ([]domain.BookingWithVenue, error) {
	const op = "postgres.BookingRepo.ListByCustomer"

	rows, err := r.handle().Query(ctx,
		`SELECT b.id, b.venue_id, b.date_from, b.date_to, b.guests, b.created_at, b.updated_at,
		        b.customer, `+prefixed("v", venueColumns)+`
		 FROM bookings b
		 JOIN venues v ON v.id = b.venue_id
		 WHERE b.customer = $1
		 ORDER BY b.date_from, b.id`,
		customer,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	out := []domain.BookingWithVenue{}
	for rows.Next() {
		var b domain.BookingWithVenue
		v := &b.Venue
		if err := rows.Scan(
			&b.ID, &b.VenueID, &b.DateFrom, &b.DateTo, &b.Guests, &b.Created, &b.Updated,
			&b.Customer.Name,
			&v.ID, &v.Owner, &v.Name, &v.Description, &v.Media, &v.Price, &v.MaxGuests, &v.Rating,
			&v.Meta.Wifi, &v.Meta.Parking, &v.Meta.Breakfast, &v.Meta.Pets,
			&v.Location.Address, &v.Location.City, &v.Location.Zip, &v.Location.Country, &v.Location.Continent,
			&v.Created, &v.Updated,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		if v.Media == nil {
			v.Media = []domain.Media{}
		}

		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Get retrieves a booking by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the booking does not exist.
func (r *BookingRepo) Get(ctx context.Context, id string) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.Get"

	var b domain.Booking
	err := r.handle().QueryRow(ctx,
		`SELECT id, venue_id, customer, date_from, date_to, guests, created_at, updated_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.VenueID, &b.Customer.Name, &b.DateFrom, &b.DateTo, &b.Guests, &b.Created, &b.Updated)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &b, nil
}

// Create inserts a booking. Availability must already have been checked in the
// same transaction that locked the venue.
func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) error {
	const op = "postgres.BookingRepo.Create"

	_, err := r.handle().Exec(ctx,
		`INSERT INTO bookings(id, venue_id, customer, date_from, date_to, guests, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.VenueID, b.Customer.Name, b.DateFrom, b.DateTo, b.Guests, b.Created, b.Updated,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return nil
}

// Delete removes a booking made by customer.
//
// Returns:
//   - error: repository.ErrNotFound if the customer has no such booking.
func (r *BookingRepo) Delete(ctx context.Context, id, customer string) error {
	const op = "postgres.BookingRepo.Delete"

	tag, err := r.handle().Exec(ctx,
		`DELETE FROM bookings WHERE id = $1 AND customer = $2`,
		id, customer,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

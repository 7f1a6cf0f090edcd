package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
)

const venueColumns = `id, owner, name, description, media, price, max_guests, rating,
	wifi, parking, breakfast, pets,
	address, city, zip, country, continent,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type VenueRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *VenueRepo) With(db DB) *VenueRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *VenueRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns every venue, newest first.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//
// Returns:
//   - []domain.Venue: all venues, never nil.
//   - error: any database error.
func (r *VenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	const op = "postgres.VenueRepo.List"

	rows, err := r.handle().Query(ctx,
		`SELECT `+venueColumns+`
		 FROM venues
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	out, err := collectVenues(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListByOwner returns the venues managed by owner.
func (r *VenueRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Venue, error) {
	const op = "postgres.VenueRepo.ListByOwner"

	rows, err := r.handle().Query(ctx,
		`SELECT `+venueColumns+`
		 FROM venues
		 WHERE owner = $1
		 ORDER BY created_at DESC, id`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	out, err := collectVenues(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Get retrieves a venue by its ID.
//
// Returns:
//   - *domain.Venue: the venue when found.
//   - error: repository.ErrNotFound if the venue does not exist.
func (r *VenueRepo) Get(ctx context.Context, id string) (*domain.Venue, error) {
	const op = "postgres.VenueRepo.Get"

	v, err := scanVenue(r.handle().QueryRow(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return v, nil
}

// GetForUpdate is Get with a row lock. It serialises concurrent bookings of the
// same venue and must run inside a transaction.
func (r *VenueRepo) GetForUpdate(ctx context.Context, id string) (*domain.Venue, error) {
	const op = "postgres.VenueRepo.GetForUpdate"

	v, err := scanVenue(r.handle().QueryRow(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = $1 FOR UPDATE`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return v, nil
}

// Create inserts a venue. ID, Owner and timestamps are taken from v as given.
//
// Returns:
//   - error: repository.ErrNotFound if the owner profile does not exist.
//   - error: repository.ErrConflict if the ID is already taken.
func (r *VenueRepo) Create(ctx context.Context, v domain.Venue) error {
	const op = "postgres.VenueRepo.Create"

	media := v.Media
	if media == nil {
		media = []domain.Media{}
	}

	_, err := r.handle().Exec(ctx,
		`INSERT INTO venues(
			id, owner, name, description, media, price, max_guests, rating,
			wifi, parking, breakfast, pets,
			address, city, zip, country, continent,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		v.ID, v.Owner, v.Name, v.Description, media, v.Price, v.MaxGuests, v.Rating,
		v.Meta.Wifi, v.Meta.Parking, v.Meta.Breakfast, v.Meta.Pets,
		v.Location.Address, v.Location.City, v.Location.Zip, v.Location.Country, v.Location.Continent,
		v.Created, v.Updated,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return nil
}

// Update overwrites the editable fields of a venue owned by v.Owner.
//
// Returns:
//   - error: repository.ErrNotFound if no venue with that ID belongs to the owner.
func (r *VenueRepo) Update(ctx context.Context, v domain.Venue) error {
	const op = "postgres.VenueRepo.Update"

	media := v.Media
	if media == nil {
		media = []domain.Media{}
	}

	tag, err := r.handle().Exec(ctx,
		`UPDATE venues SET
			name = $3, description = $4, media = $5, price = $6, max_guests = $7,
			wifi = $8, parking = $9, breakfast = $10, pets = $11,
			address = $12, city = $13, zip = $14, country = $15, continent = $16,
			updated_at = $17
		 WHERE id = $1 AND owner = $2`,
		v.ID, v.Owner, v.Name, v.Description, media, v.Price, v.MaxGuests,
		v.Meta.Wifi, v.Meta.Parking, v.Meta.Breakfast, v.Meta.Pets,
		v.Location.Address, v.Location.City, v.Location.Zip, v.Location.Country, v.Location.Continent,
		v.Updated,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes a venue owned by owner together with its bookings.
func (r *VenueRepo) Delete(ctx context.Context, id, owner string) error {
	const op = "postgres.VenueRepo.Delete"

	tag, err := r.handle().Exec(ctx,
		`DELETE FROM venues WHERE id = $1 AND owner = $2`,
		id, owner,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func scanVenue(row scanner) (*domain.Venue, error) {
	var v domain.Venue

	if err := row.Scan(
		&v.ID, &v.Owner, &v.Name, &v.Description, &v.Media, &v.Price, &v.MaxGuests, &v.Rating,
		&v.Meta.Wifi, &v.Meta.Parking, &v.Meta.Breakfast, &v.Meta.Pets,
		&v.Location.Address, &v.Location.City, &v.Location.Zip, &v.Location.Country, &v.Location.Continent,
		&v.Created, &v.Updated,
	); err != nil {
		return nil, err
	}

	if v.Media == nil {
		v.Media = []domain.Media{}
	}

	return &v, nil
}

func collectVenues(rows pgx.Rows) ([]domain.Venue, error) {
	defer rows.Close()

	out := []domain.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, translateDBErr(err)
		}

		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// prefixed qualifies each column in a comma separated list with alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

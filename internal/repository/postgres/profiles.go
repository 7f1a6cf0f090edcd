package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ProfileRepo) With(db DB) *ProfileRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ProfileRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Get retrieves a profile by name.
//
// Returns:
//   - error: repository.ErrNotFound if the profile does not exist.
func (r *ProfileRepo) Get(ctx context.Context, name string) (*domain.Profile, error) {
	const op = "postgres.ProfileRepo.Get"

	var p domain.Profile
	err := r.handle().QueryRow(ctx,
		`SELECT name, email, bio, avatar_url, avatar_alt, venue_manager
		 FROM profiles WHERE name = $1`,
		name,
	).Scan(&p.Name, &p.Email, &p.Bio, &p.Avatar.URL, &p.Avatar.Alt, &p.VenueManager)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &p, nil
}

// Upsert creates the profile or refreshes its email and bio.
func (r *ProfileRepo) Upsert(ctx context.Context, p domain.Profile) error {
	const op = "postgres.ProfileRepo.Upsert"

	_, err := r.handle().Exec(ctx,
		`INSERT INTO profiles(name, email, bio, avatar_url, avatar_alt, venue_manager)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO UPDATE SET email = EXCLUDED.email, bio = EXCLUDED.bio`,
		p.Name, p.Email, p.Bio, p.Avatar.URL, p.Avatar.Alt, p.VenueManager,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return nil
}

func (r *ProfileRepo) UpdateAvatar(ctx context.Context, name string, avatar domain.Media) error {
	const op = "postgres.ProfileRepo.UpdateAvatar"

	tag, err := r.handle().Exec(ctx,
		`UPDATE profiles SET avatar_url = $2, avatar_alt = $3 WHERE name = $1`,
		name, avatar.URL, avatar.Alt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *ProfileRepo) SetVenueManager(ctx context.Context, name string, manager bool) error {
	const op = "postgres.ProfileRepo.SetVenueManager"

	tag, err := r.handle().Exec(ctx,
		`UPDATE profiles SET venue_manager = $2 WHERE name = $1`,
		name, manager,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

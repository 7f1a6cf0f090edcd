package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.VenuesPubSub
	uow    *uow.UoW
	logger *slog.Logger
	now    func() time.Time
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.VenuesPubSub,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		logger: logger,
		now:    time.Now,
	}
}

// ListVenues returns the venues owned by owner, newest first.
func (s *Service) ListVenues(ctx context.Context, owner string) ([]domain.Venue, error) {
	const op = "service.manager.ListVenues"

	venues, err := s.store.Venues().ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

// CreateVenue validates the form and stores a new venue for owner.
//
// Parameters:
//   - ctx: request-scoped context.
//   - owner: profile name of the venue manager.
//   - in: the submitted venue form.
//
// Returns:
//   - *domain.Venue: the stored venue.
//   - error: *manager.ValidationError if the form is incomplete.
//   - error: manager.ErrOwnerNotFound if the owner has no profile.
func (s *Service) CreateVenue(ctx context.Context, owner string, in VenueInput) (*domain.Venue, error) {
	const op = "service.manager.CreateVenue"

	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingOwner)
	}

	in = in.Normalize()
	if err := ValidateVenue(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	venue := in.venue()
	venue.ID = uuid.NewString()
	venue.Owner = owner
	venue.Created = now
	venue.Updated = now

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Venues().With(tx).Create(ctx, venue); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOwnerNotFound
			}

			return err
		}

		after(s.venueChanged(venue.ID))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &venue, nil
}

// UpdateVenue replaces the editable fields of one of owner's venues. Rating and
// creation time are kept.
//
// Returns:
//   - error: *manager.ValidationError if the form is incomplete.
//   - error: manager.ErrVenueNotFound if the venue does not exist.
//   - error: manager.ErrNotVenueOwner if the venue belongs to someone else.
func (s *Service) UpdateVenue(
	ctx context.Context,
	owner, venueID string,
	in VenueInput,
) (*domain.Venue, error) {
	const op = "service.manager.UpdateVenue"

	if _, err := uuid.Parse(venueID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
	}

	in = in.Normalize()
	if err := ValidateVenue(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var updated domain.Venue
	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		current, err := s.ownedForUpdate(ctx, tx, owner, venueID)
		if err != nil {
			return err
		}

		updated = in.venue()
		updated.ID = current.ID
		updated.Owner = current.Owner
		updated.Rating = current.Rating
		updated.Created = current.Created
		updated.Updated = s.now().UTC()

		if err := s.store.Venues().With(tx).Update(ctx, updated); err != nil {
			return err
		}

		after(s.venueChanged(venueID))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &updated, nil
}

// DeleteVenue removes one of owner's venues together with its bookings.
func (s *Service) DeleteVenue(ctx context.Context, owner, venueID string) error {
	const op = "service.manager.DeleteVenue"

	if _, err := uuid.Parse(venueID); err != nil {
		return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if _, err := s.ownedForUpdate(ctx, tx, owner, venueID); err != nil {
			return err
		}

		if err := s.store.Venues().With(tx).Delete(ctx, venueID, owner); err != nil {
			return err
		}

		after(s.venueChanged(venueID))

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BookingsAtVenue lists the bookings made at one of owner's venues, including
// customer contact details.
func (s *Service) BookingsAtVenue(ctx context.Context, owner, venueID string) ([]domain.Booking, error) {
	const op = "service.manager.BookingsAtVenue"

	if _, err := uuid.Parse(venueID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
	}

	venue, err := s.store.Venues().Get(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if venue.Owner != owner {
		return nil, fmt.Errorf("%s: %w", op, ErrNotVenueOwner)
	}

	bookings, err := s.store.Bookings().ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Service) ownedForUpdate(
	ctx context.Context,
	tx postgresrepo.DB,
	owner, venueID string,
) (*domain.Venue, error) {
	venue, err := s.store.Venues().With(tx).GetForUpdate(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}

		return nil, err
	}

	if venue.Owner != owner {
		return nil, ErrNotVenueOwner
	}

	return venue, nil
}

func (s *Service) venueChanged(venueID string) uow.AfterCommit {
	return func(ctx context.Context) {
		if err := s.cache.InvalidateVenue(ctx, venueID); err != nil {
			s.logger.Warn("failed to invalidate venue cache", "venue_id", venueID, "error", err)
		}

		if s.pubsub == nil {
			return
		}

		if err := s.pubsub.PublishVenueChanged(ctx, venueID); err != nil {
			s.logger.Warn("failed to publish venue change", "venue_id", venueID, "error", err)
		}
	}
}

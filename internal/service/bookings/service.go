package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/uow"
)

type CreateInput struct {
	Customer string
	VenueID  string
	DateFrom *time.Time
	DateTo   *time.Time
	Guests   int
}

func (in CreateInput) candidate() availability.Candidate {
	return availability.Candidate{From: in.DateFrom, To: in.DateTo}
}

type Service struct {
	store   Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.VenuesPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	logger  *slog.Logger
	now     func() time.Time
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.VenuesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
) *Service {
	return NewWithStore(pgStore{store}, cache, pubsub, limiter, logger)
}

// NewWithStore is New over any Store implementation.
func NewWithStore(
	store Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.VenuesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
) *Service {
	if cache == nil {
		cache = redisrepo.New(nil)
	}

	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		logger:  logger,
		now:     time.Now,
	}
}

// Create books a venue for a customer.
//
// The venue row is locked for the duration of the transaction, so two requests
// for the same venue are checked against each other's bookings.
//
// Parameters:
//   - ctx: request-scoped context.
//   - in: customer, venue, dates and guest count.
//   - rlKey: rate limit bucket, usually the client IP; empty disables the check.
//
// Returns:
//   - *domain.Booking: the created booking.
//   - error: *availability.Error when the booking is rejected (incomplete dates,
//     overlap, too many guests).
//   - error: bookings.ErrVenueNotFound if the venue does not exist.
//   - error: bookings.RateLimitedError if the caller is over the limit.
func (s *Service) Create(ctx context.Context, in CreateInput, rlKey string) (*domain.Booking, error) {
	const op = "service.bookings.Create"

	in.Customer = strings.TrimSpace(in.Customer)
	if in.Customer == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingCustomer)
	}

	if _, err := uuid.Parse(in.VenueID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
	}

	if err := s.checkDates(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.limiter != nil && rlKey != "" {
		d, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			// Limiter failures are logged and the booking proceeds.
			s.logger.Warn("booking rate limiter unavailable", "error", err)
		} else if !d.Allowed {
			return nil, fmt.Errorf("%s: %w", op, RateLimitedError{RetryAfter: d.RetryAfter})
		}
	}

	now := s.now().UTC()
	booking := domain.Booking{
		ID:       uuid.NewString(),
		VenueID:  in.VenueID,
		Guests:   in.Guests,
		Customer: domain.Customer{Name: in.Customer},
		Created:  now,
		Updated:  now,
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		venue, err := s.store.LockVenue(ctx, tx, in.VenueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrVenueNotFound
			}

			return err
		}

		existing, err := s.store.VenueBookings(ctx, tx, in.VenueID)
		if err != nil {
			return err
		}

		if err := availability.CanSubmitBooking(
			in.candidate(),
			availability.Normalize(existing),
			in.Guests,
			*venue,
		); err != nil {
			return err
		}

		booking.DateFrom = *in.DateFrom
		booking.DateTo = *in.DateTo

		if err := s.store.InsertBooking(ctx, tx, booking); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCustomerNotFound
			}

			return err
		}

		after(s.venueChanged(in.VenueID))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &booking, nil
}

// Cancel deletes one of the customer's bookings.
//
// Returns:
//   - error: bookings.ErrBookingNotFound if the customer has no such booking.
func (s *Service) Cancel(ctx context.Context, customer, bookingID string) error {
	const op = "service.bookings.Cancel"

	if _, err := uuid.Parse(bookingID); err != nil {
		return fmt.Errorf("%s: %w", op, ErrBookingNotFound)
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		b, err := s.store.GetBooking(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}

			return err
		}

		if err := s.store.DeleteBooking(ctx, tx, bookingID, customer); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}

			return err
		}

		after(s.venueChanged(b.VenueID))

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListForCustomer returns the customer's bookings split into upcoming and
// completed.
func (s *Service) ListForCustomer(ctx context.Context, customer string) (Split, error) {
	const op = "service.bookings.ListForCustomer"

	bookings, err := s.store.CustomerBookings(ctx, customer)
	if err != nil {
		return Split{}, fmt.Errorf("%s: %w", op, err)
	}

	return SplitByTime(bookings, s.now()), nil
}

// checkDates rejects inputs the date picker would not have allowed. A missing
// endpoint is left for availability.CanSubmitBooking to report.
func (s *Service) checkDates(in CreateInput) error {
	if in.DateFrom != nil && in.DateTo != nil && in.DateTo.Before(*in.DateFrom) {
		return ErrInvalidDateRange
	}

	if in.DateFrom != nil {
		today := s.now().UTC().Truncate(24 * time.Hour)
		if in.DateFrom.Before(today) {
			return ErrDateInPast
		}
	}

	return nil
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

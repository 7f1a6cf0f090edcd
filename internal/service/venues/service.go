package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/listing"
	"github.com/kirinyoku/holidaze/internal/repository"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
)

type Config struct {
	VenuesTTL       time.Duration
	VenueTTL        time.Duration
	BookingsTTL     time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	store Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	return NewWithStore(pgStore{store}, cache, cfg)
}

// NewWithStore is New over any Store implementation.
func NewWithStore(store Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cache == nil {
		cache = redisrepo.New(nil)
	}

	if cfg.VenuesTTL <= 0 {
		cfg.VenuesTTL = 60 * time.Second
	}

	if cfg.VenueTTL <= 0 {
		cfg.VenueTTL = 60 * time.Second
	}

	if cfg.BookingsTTL <= 0 {
		cfg.BookingsTTL = 15 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 12
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// List renders one page of the venue grid. The whole collection is loaded
// (through the cache) and then filtered, sorted and paginated in memory so page
// boundaries stay stable while search and sort change.
//
// Parameters:
//   - ctx: request-scoped context.
//   - state: search text, sort key and page; zero values fall back to defaults.
//
// Returns:
//   - listing.Result: the page with pagination counters.
//   - error: any store error.
func (s *Service) List(ctx context.Context, state listing.State) (listing.Result, error) {
	const op = "service.venues.List"

	all, err := s.all(ctx)
	if err != nil {
		return listing.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return listing.Run(all, state.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)), nil
}

// Get retrieves a venue by its ID.
//
// Returns:
//   - *domain.Venue: the venue.
//   - error: venues.ErrVenueNotFound if the venue does not exist.
func (s *Service) Get(ctx context.Context, id string) (*domain.Venue, error) {
	const op = "service.venues.Get"

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
	}

	venue, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenue(id),
		s.cfg.VenueTTL,
		func(ctx context.Context) (domain.Venue, error) {
			v, err := s.store.Venue(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Venue{}, ErrVenueNotFound
				}

				return domain.Venue{}, err
			}

			return *v, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &venue, nil
}

// GetWithBookings returns the venue detail page: the venue and its bookings with
// customer emails stripped.
func (s *Service) GetWithBookings(ctx context.Context, id string) (*domain.VenueWithBookings, error) {
	const op = "service.venues.GetWithBookings"

	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.bookings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	public := make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		b.Customer.Email = ""
		public[i] = b
	}

	return &domain.VenueWithBookings{Venue: *venue, Bookings: public}, nil
}

// Unavailable lists the blocked date ranges of a venue in booking order.
func (s *Service) Unavailable(ctx context.Context, id string) ([]domain.DateRange, error) {
	const op = "service.venues.Unavailable"

	if _, err := s.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.bookings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return availability.Unavailable(bookings), nil
}

// Check evaluates the booking widget for a venue. It never fails because of the
// user's input; the input problems are reported in the Verdict.
//
// Parameters:
//   - ctx: request-scoped context.
//   - id: venue ID.
//   - candidate: the dates picked so far, either may be nil.
//   - guests: the chosen guest count.
//
// Returns:
//   - Verdict: per-field messages plus the overall submit decision.
//   - error: venues.ErrVenueNotFound if the venue does not exist.
func (s *Service) Check(
	ctx context.Context,
	id string,
	candidate availability.Candidate,
	guests int,
) (Verdict, error) {
	const op = "service.venues.Check"

	venue, err := s.Get(ctx, id)
	if err != nil {
		return Verdict{}, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.bookings(ctx, id)
	if err != nil {
		return Verdict{}, fmt.Errorf("%s: %w", op, err)
	}

	return Evaluate(*venue, availability.Normalize(bookings), candidate, guests), nil
}

func (s *Service) all(ctx context.Context) ([]domain.Venue, error) {
	return redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenuesAll(),
		s.cfg.VenuesTTL,
		func(ctx context.Context) ([]domain.Venue, error) {
			return s.store.AllVenues(ctx)
		},
	)
}

func (s *Service) bookings(ctx context.Context, venueID string) ([]domain.Booking, error) {
	return redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenueBookings(venueID),
		s.cfg.BookingsTTL,
		func(ctx context.Context) ([]domain.Booking, error) {
			return s.store.VenueBookings(ctx, venueID)
		},
	)
}

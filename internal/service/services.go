package service

import (
	"log/slog"

	postgres "github.com/kirinyoku/holidaze/internal/repository/postgres"
	redis "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/service/bookings"
	"github.com/kirinyoku/holidaze/internal/service/manager"
	"github.com/kirinyoku/holidaze/internal/service/profiles"
	"github.com/kirinyoku/holidaze/internal/service/venues"
)

type Services struct {
	Venues   *venues.Service
	Bookings *bookings.Service
	Manager  *manager.Service
	Profiles *profiles.Service
}

type Config struct {
	Venues venues.Config
}

// NewServices builds every service over one store. cache, pubsub and limiter may
// be nil when redis is not configured.
func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.VenuesPubSub,
	limiter *redis.SlidingWindowLimiter,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Venues:   venues.New(store, cache, cfg.Venues),
		Bookings: bookings.New(store, cache, pubsub, limiter, logger),
		Manager:  manager.New(store, cache, pubsub, logger),
		Profiles: profiles.New(store),
	}
}

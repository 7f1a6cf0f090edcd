package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/holidaze/internal/config"
	"github.com/kirinyoku/holidaze/internal/postgres"
	"github.com/kirinyoku/holidaze/internal/redis"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/service"
	"github.com/kirinyoku/holidaze/internal/service/venues"
	httpgin "github.com/kirinyoku/holidaze/internal/transport/http/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *goredis.Client
	cache      *redisrepo.Cache
	pubsub     *redisrepo.VenuesPubSub
	httpServer *http.Server
}

// New connects to postgres (applying the schema) and, when REDIS_ADDR is set,
// to redis. Without redis the service runs uncached, with no cross-instance
// invalidation, booking rate limit or idempotency.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.New(ctx, postgres.Config{
		DSN:      cfg.Postgres.DSN(),
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		cache:  redisrepo.New(nil),
	}

	var (
		limiter *redisrepo.SlidingWindowLimiter
		idem    *redisrepo.IdempotencyStore
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redis.New(ctx, redis.Config{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		a.rdb = rdb
		a.cache = redisrepo.New(rdb)
		a.pubsub = redisrepo.NewVenuesPubSub(rdb)
		limiter = redisrepo.NewSlidingWindowLimiter(rdb, "bookings", cfg.Booking.RateLimit, cfg.Booking.RateWindow)
		idem = redisrepo.NewIdempotencyStore(rdb, cfg.Booking.IdempotencyTTL, 60*time.Second)
	} else {
		logger.Warn("REDIS_ADDR is empty, running without cache")
	}

	store := postgresrepo.NewStore(pool)

	services := service.NewServices(store, a.cache, a.pubsub, limiter, logger, service.Config{
		Venues: venues.Config{
			VenuesTTL:       cfg.Listing.VenuesTTL,
			DefaultPageSize: cfg.Listing.DefaultPageSize,
			MaxPageSize:     cfg.Listing.MaxPageSize,
		},
	})

	router := httpgin.NewRouter(
		services,
		idem,
		logger,
		httpgin.RateLimitMiddleware(cfg.HTTP.RPS, cfg.HTTP.Burst, logger),
	)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer a.close()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Every published venue change drops the cached copies again.
	if a.pubsub != nil {
		g.Go(func() error {
			err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, venueID string) {
				if err := a.cache.InvalidateVenue(ctx, venueID); err != nil {
					a.logger.Warn("failed to invalidate venue cache", "venue_id", venueID, "error", err)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("venue change subscription: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

func (a *App) close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("failed to close redis", "error", err)
		}
	}

	a.pool.Close()
}

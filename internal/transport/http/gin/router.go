package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/holidaze/internal/availability"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/service"
	"github.com/kirinyoku/holidaze/internal/service/bookings"
	"github.com/kirinyoku/holidaze/internal/service/manager"
	"github.com/kirinyoku/holidaze/internal/service/profiles"
	"github.com/kirinyoku/holidaze/internal/service/venues"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type handlers struct {
	svcs   *service.Services
	idem   *redisrepo.IdempotencyStore
	logger *slog.Logger
}

// NewRouter wires every route. idem may be nil, in which case Idempotency-Key
// headers are ignored.
func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORS(),
		ProfileMiddleware(),
	)
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	h := &handlers{svcs: svcs, idem: idem, logger: logger}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/venues", h.listVenues)
	r.GET("/venues/:id", h.getVenue)
	r.GET("/venues/:id/unavailable", h.getUnavailable)
	r.POST("/venues/:id/check", h.checkBooking)

	r.GET("/profiles/:name", h.getProfile)
	r.PUT("/profiles/:name", h.registerProfile)

	authed := r.Group("/", RequireProfile())
	{
		authed.POST("/bookings", h.createBooking)
		authed.DELETE("/bookings/:id", h.cancelBooking)

		authed.GET("/profiles/:name/bookings", h.selfOnly, h.listProfileBookings)
		authed.PUT("/profiles/:name/avatar", h.selfOnly, h.updateAvatar)
		authed.PUT("/profiles/:name/venue-manager", h.selfOnly, h.setVenueManager)
	}

	mgr := r.Group("/manager", RequireProfile())
	{
		mgr.GET("/venues", h.managerListVenues)
		mgr.POST("/venues", h.managerCreateVenue)
		mgr.PUT("/venues/:id", h.managerUpdateVenue)
		mgr.DELETE("/venues/:id", h.managerDeleteVenue)
		mgr.GET("/venues/:id/bookings", h.managerVenueBookings)
	}

	return r
}

// selfOnly rejects requests acting on someone else's profile.
func (h *handlers) selfOnly(c *gin.Context) {
	if c.Param("name") != profileName(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "cannot act on another profile"})
		return
	}

	c.Next()
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}

	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var (
		availErr *availability.Error
		valErr   *manager.ValidationError
		rlErr    bookings.RateLimitedError
	)

	switch {
	// booking verdicts
	case errors.As(err, &availErr):
		status := http.StatusUnprocessableEntity
		if availErr.Kind == availability.KindDateRangeOverlap {
			status = http.StatusConflict
		}
		c.JSON(status, BookingRejectedResponse{Error: availErr.Reason, Kind: availErr.Kind.String()})
	case errors.As(err, &rlErr):
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(rlErr)))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many booking attempts, try again later"})

	// venue form
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "invalid venue",
			Fields: valErr.Fields,
			Errors: valErr.Messages,
		})

	// not found
	case errors.Is(err, venues.ErrVenueNotFound),
		errors.Is(err, bookings.ErrVenueNotFound),
		errors.Is(err, manager.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
	case errors.Is(err, bookings.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
	case errors.Is(err, profiles.ErrProfileNotFound),
		errors.Is(err, bookings.ErrCustomerNotFound),
		errors.Is(err, manager.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})

	// forbidden
	case errors.Is(err, manager.ErrNotVenueOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "venue belongs to another manager"})

	// bad input
	case errors.Is(err, bookings.ErrInvalidDateRange),
		errors.Is(err, bookings.ErrDateInPast),
		errors.Is(err, bookings.ErrMissingCustomer),
		errors.Is(err, manager.ErrMissingOwner),
		errors.Is(err, profiles.ErrInvalidName),
		errors.Is(err, profiles.ErrInvalidEmail),
		errors.Is(err, profiles.ErrInvalidAvatar):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: rootMessage(err)})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func retryAfterSeconds(err bookings.RateLimitedError) int {
	secs := int(err.RetryAfter.Seconds())
	if err.RetryAfter%time.Second != 0 {
		secs++
	}

	return max(secs, 1)
}

// rootMessage strips the op prefixes and returns the innermost error text.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

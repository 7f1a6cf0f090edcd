package httpgin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	redisrepo "github.com/kirinyoku/holidaze/internal/repository/redis"
	"github.com/kirinyoku/holidaze/internal/service/bookings"
)

// @Summary  Book a venue (idempotent)
// @Param    X-Profile-Name   header  string                true   "acting profile"
// @Param    Idempotency-Key  header  string                false  "replay key"
// @Param    req              body    CreateBookingRequest  true   "payload"
// @Success  201  {object}  domain.Booking
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  BookingRejectedResponse "dates overlap / idem in progress"
// @Failure  422  {object}  BookingRejectedResponse "incomplete dates / too many guests"
// @Failure  429  {object}  ErrorResponse "rate limited"
// @Router   /bookings [post]
func (h *handlers) createBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	from, to, err := parseDates(req.DateFrom, req.DateTo)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	customer := profileName(c)
	ctx := c.Request.Context()

	idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	var idemStorageKey string
	if h.idem != nil && idemKey != "" {
		idemStorageKey = redisrepo.KeyIdemBooking(customer, idemKey)

		state, payload, err := h.idem.Begin(ctx, idemStorageKey)
		switch {
		case err != nil:
			// Without redis the request still goes through, just not deduplicated.
			h.logger.Warn("idempotency store unavailable", "error", err)
			idemStorageKey = ""
		case state == redisrepo.IdemDone:
			c.Header("Idempotency-Key", idemKey)
			c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
			return
		case state == redisrepo.IdemInProgress:
			c.Header("Retry-After", "1")
			c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
			return
		}
	}

	booking, err := h.svcs.Bookings.Create(ctx, bookings.CreateInput{
		Customer: customer,
		VenueID:  req.VenueID,
		DateFrom: from,
		DateTo:   to,
		Guests:   req.Guests,
	}, "ip:"+c.ClientIP())
	if err != nil {
		if idemStorageKey != "" {
			_ = h.idem.Release(context.WithoutCancel(ctx), idemStorageKey)
		}
		respondErr(c, err)
		return
	}

	if idemStorageKey != "" {
		b, _ := json.Marshal(booking)
		if err := h.idem.Save(context.WithoutCancel(ctx), idemStorageKey, string(b)); err != nil {
			h.logger.Warn("failed to store idempotent result", "error", err)
		}
		c.Header("Idempotency-Key", idemKey)
	}

	c.JSON(http.StatusCreated, booking)
}

// @Summary  Cancel a booking
// @Param    X-Profile-Name  header  string  true  "acting profile"
// @Param    id              path    string  true  "Booking ID (uuid)"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /bookings/{id} [delete]
func (h *handlers) cancelBooking(c *gin.Context) {
	if err := h.svcs.Bookings.Cancel(c.Request.Context(), profileName(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

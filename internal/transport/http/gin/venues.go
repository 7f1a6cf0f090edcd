package httpgin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/listing"
)

// @Summary  List venues
// @Param    q      query  string  false  "case-insensitive search in venue name"
// @Param    sort   query  string  false  "default | priceAsc | priceDesc | nameAsc"
// @Param    page   query  int     false  "1-based page"
// @Param    limit  query  int     false  "page size"
// @Success  200  {object}  listing.Result
// @Router   /venues [get]
func (h *handlers) listVenues(c *gin.Context) {
	state := listing.State{
		SearchText: c.Query("q"),
		SortKey:    listing.ParseSortKey(c.Query("sort")),
		Page:       parseIntDefault(c.Query("page"), 1),
		PageSize:   parseIntDefault(c.Query("limit"), 0),
	}

	res, err := h.svcs.Venues.List(c.Request.Context(), state)
	if err != nil {
		respondErr(c, err)
		return
	}

	writeJSONWithCache(c, http.StatusOK, res, "public, max-age=30", true)
}

// @Summary  Get venue
// @Param    id         path   string  true   "Venue ID (uuid)"
// @Param    _bookings  query  bool    false  "include bookings"
// @Success  200  {object}  domain.VenueWithBookings
// @Failure  404  {object}  ErrorResponse
// @Router   /venues/{id} [get]
func (h *handlers) getVenue(c *gin.Context) {
	id := c.Param("id")

	withBookings, _ := strconv.ParseBool(c.Query("_bookings"))
	if withBookings {
		v, err := h.svcs.Venues.GetWithBookings(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, v, "public, max-age=15", true)
		return
	}

	v, err := h.svcs.Venues.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	writeJSONWithCache(c, http.StatusOK, v, "public, max-age=60", true)
}

// @Summary  Booked date ranges of a venue
// @Param    id  path  string  true  "Venue ID (uuid)"
// @Success  200  {object}  UnavailableResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /venues/{id}/unavailable [get]
func (h *handlers) getUnavailable(c *gin.Context) {
	id := c.Param("id")

	ranges, err := h.svcs.Venues.Unavailable(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	writeJSONWithCache(c, http.StatusOK, UnavailableResponse{VenueID: id, Ranges: ranges}, "public, max-age=15", true)
}

// @Summary  Check a booking before submitting it
// @Param    id   path  string        true  "Venue ID (uuid)"
// @Param    req  body  CheckRequest  true  "picked dates and guests"
// @Success  200  {object}  venues.Verdict
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /venues/{id}/check [post]
func (h *handlers) checkBooking(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	from, to, err := parseDates(req.DateFrom, req.DateTo)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	verdict, err := h.svcs.Venues.Check(
		c.Request.Context(),
		c.Param("id"),
		availability.Candidate{From: from, To: to},
		req.Guests,
	)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, verdict)
}

package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/holidaze/internal/service/manager"
)

// @Summary  Venues owned by the acting manager
// @Param    X-Profile-Name  header  string  true  "acting profile"
// @Success  200  {array}  domain.Venue
// @Router   /manager/venues [get]
func (h *handlers) managerListVenues(c *gin.Context) {
	venues, err := h.svcs.Manager.ListVenues(c.Request.Context(), profileName(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, venues)
}

// @Summary  Create venue
// @Param    X-Profile-Name  header  string              true  "acting profile"
// @Param    req             body    manager.VenueInput  true  "venue form"
// @Success  201  {object}  domain.Venue
// @Failure  400  {object}  ValidationErrorResponse
// @Router   /manager/venues [post]
func (h *handlers) managerCreateVenue(c *gin.Context) {
	var req manager.VenueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	v, err := h.svcs.Manager.CreateVenue(c.Request.Context(), profileName(c), req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, v)
}

// @Summary  Update venue
// @Param    X-Profile-Name  header  string              true  "acting profile"
// @Param    id              path    string              true  "Venue ID (uuid)"
// @Param    req             body    manager.VenueInput  true  "venue form"
// @Success  200  {object}  domain.Venue
// @Failure  400  {object}  ValidationErrorResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /manager/venues/{id} [put]
func (h *handlers) managerUpdateVenue(c *gin.Context) {
	var req manager.VenueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	v, err := h.svcs.Manager.UpdateVenue(c.Request.Context(), profileName(c), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, v)
}

// @Summary  Delete venue
// @Param    X-Profile-Name  header  string  true  "acting profile"
// @Param    id              path    string  true  "Venue ID (uuid)"
// @Success  204
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /manager/venues/{id} [delete]
func (h *handlers) managerDeleteVenue(c *gin.Context) {
	if err := h.svcs.Manager.DeleteVenue(c.Request.Context(), profileName(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary  Bookings at one of the manager's venues
// @Param    X-Profile-Name  header  string  true  "acting profile"
// @Param    id              path    string  true  "Venue ID (uuid)"
// @Success  200  {array}  domain.Booking
// @Failure  403  {object}  ErrorResponse
// @Router   /manager/venues/{id}/bookings [get]
func (h *handlers) managerVenueBookings(c *gin.Context) {
	bookings, err := h.svcs.Manager.BookingsAtVenue(c.Request.Context(), profileName(c), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

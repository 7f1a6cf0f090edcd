package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/holidaze/internal/domain"
)

// @Summary  Get profile with venues and bookings
// @Param    name  path  string  true  "Profile name"
// @Success  200  {object}  domain.ProfileDetails
// @Failure  404  {object}  ErrorResponse
// @Router   /profiles/{name} [get]
func (h *handlers) getProfile(c *gin.Context) {
	name := c.Param("name")

	p, err := h.svcs.Profiles.Get(c.Request.Context(), name)
	if err != nil {
		respondErr(c, err)
		return
	}

	// Visitors see the public part only.
	if profileName(c) != name {
		p.Email = ""
		p.Bookings = []domain.BookingWithVenue{}
	}

	c.JSON(http.StatusOK, p)
}

// @Summary  Create or refresh a profile
// @Param    name  path  string                  true  "Profile name"
// @Param    req   body  RegisterProfileRequest  true  "payload"
// @Success  200  {object}  domain.Profile
// @Failure  400  {object}  ErrorResponse
// @Router   /profiles/{name} [put]
func (h *handlers) registerProfile(c *gin.Context) {
	var req RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svcs.Profiles.Register(c.Request.Context(), domain.Profile{
		Name:  c.Param("name"),
		Email: req.Email,
		Bio:   req.Bio,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary  Upcoming and completed bookings of a profile
// @Param    X-Profile-Name  header  string  true  "acting profile"
// @Param    name            path    string  true  "Profile name"
// @Success  200  {object}  bookings.Split
// @Failure  403  {object}  ErrorResponse
// @Router   /profiles/{name}/bookings [get]
func (h *handlers) listProfileBookings(c *gin.Context) {
	split, err := h.svcs.Bookings.ListForCustomer(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, split)
}

// @Summary  Update avatar
// @Param    X-Profile-Name  header  string               true  "acting profile"
// @Param    name            path    string               true  "Profile name"
// @Param    req             body    UpdateAvatarRequest  true  "payload"
// @Success  200  {object}  domain.Profile
// @Failure  400  {object}  ErrorResponse
// @Router   /profiles/{name}/avatar [put]
func (h *handlers) updateAvatar(c *gin.Context) {
	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svcs.Profiles.UpdateAvatar(c.Request.Context(), c.Param("name"), req.URL)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary  Turn venue manager mode on or off
// @Param    X-Profile-Name  header  string                  true  "acting profile"
// @Param    name            path    string                  true  "Profile name"
// @Param    req             body    SetVenueManagerRequest  true  "payload"
// @Success  200  {object}  domain.Profile
// @Router   /profiles/{name}/venue-manager [put]
func (h *handlers) setVenueManager(c *gin.Context) {
	var req SetVenueManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svcs.Profiles.SetVenueManager(c.Request.Context(), c.Param("name"), req.VenueManager)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

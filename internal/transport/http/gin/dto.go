package httpgin

import (
	"fmt"
	"strings"
	"time"

	"github.com/kirinyoku/holidaze/internal/domain"
)

// CheckRequest is the booking widget state. Either date may be omitted while
// the user is still picking.
type CheckRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type CreateBookingRequest struct {
	VenueID  string `json:"venueId" binding:"required"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type RegisterProfileRequest struct {
	Email string `json:"email" binding:"required"`
	Bio   string `json:"bio"`
}

type UpdateAvatarRequest struct {
	URL string `json:"url"`
}

type SetVenueManagerRequest struct {
	VenueManager bool `json:"venueManager"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// BookingRejectedResponse explains why a booking could not be made. Kind names the
// failed check, e.g. DateRangeOverlap.
type BookingRejectedResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
	Errors []string `json:"errors"`
}

type UnavailableResponse struct {
	VenueID string             `json:"venueId"`
	Ranges  []domain.DateRange `json:"ranges"`
}

var dateLayouts = []string{time.RFC3339Nano, time.DateOnly}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates. An empty
// string is a date not picked yet and yields nil.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid %s (expected YYYY-MM-DD or RFC3339)", field)
}

func parseDates(from, to string) (*time.Time, *time.Time, error) {
	f, err := parseDate("dateFrom", from)
	if err != nil {
		return nil, nil, err
	}

	t, err := parseDate("dateTo", to)
	if err != nil {
		return nil, nil, err
	}

	return f, t, nil
}

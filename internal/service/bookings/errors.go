package bookings

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer profile not found")
	ErrMissingCustomer  = errors.New("customer is required")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrDateInPast       = errors.New("start date is in the past")
)

type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter)
}

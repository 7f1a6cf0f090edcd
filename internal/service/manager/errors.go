package manager

import (
	"errors"
	"strings"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrOwnerNotFound = errors.New("owner profile not found")
	ErrNotVenueOwner = errors.New("venue belongs to another manager")
	ErrMissingOwner  = errors.New("owner is required")
)

// ValidationError lists every field of a venue form that failed, with the
// message to show for each in form order.
type ValidationError struct {
	Fields   []string
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid venue: " + strings.Join(e.Messages, "; ")
}

// Package availability decides whether a date range can be booked at a venue.
//
// Every function here is pure: same inputs, same verdict. Ranges are closed on both
// ends, so a stay ending on a day conflicts with one starting on that same day.
package availability

import (
	"fmt"
	"time"

	"github.com/kirinyoku/holidaze/internal/domain"
)

const (
	msgOverlap      = "Selected dates overlap with existing bookings."
	msgStartBooked  = "Selected start date is already booked."
	msgEndBooked    = "Selected end date is already booked."
	msgIncomplete   = "Please select both a start and an end date."
	msgMissingStart = "Please select a start date."
	msgMissingEnd   = "Please select an end date."
)

// Candidate is the range a user is trying to book. Either endpoint may still be unset.
type Candidate struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

func NewCandidate(from, to time.Time) Candidate {
	return Candidate{From: &from, To: &to}
}

func (c Candidate) Complete() bool {
	return c.From != nil && c.To != nil
}

// Provisional returns the range to check against existing bookings. With a single
// endpoint chosen the range collapses to that instant.
func (c Candidate) Provisional() (domain.DateRange, bool) {
	switch {
	case c.From != nil && c.To != nil:
		return domain.DateRange{From: *c.From, To: *c.To}, true
	case c.From != nil:
		return domain.DateRange{From: *c.From, To: *c.From}, true
	case c.To != nil:
		return domain.DateRange{From: *c.To, To: *c.To}, true
	default:
		return domain.DateRange{}, false
	}
}

// Normalize maps bookings to date ranges in input order, dropping ranges that end
// before they start.
func Normalize(bookings []domain.Booking) []domain.DateRange {
	out := make([]domain.DateRange, 0, len(bookings))
	for _, b := range bookings {
		r := domain.DateRange{From: b.DateFrom, To: b.DateTo}
		if !r.Valid() {
			continue
		}

		out = append(out, r)
	}

	return out
}

// Unavailable is the list of blocked ranges shown next to the booking widget.
func Unavailable(bookings []domain.Booking) []domain.DateRange {
	return Normalize(bookings)
}

// Overlaps reports whether candidate intersects any valid range in existing.
func Overlaps(existing []domain.DateRange, candidate domain.DateRange) bool {
	for _, e := range existing {
		if !e.Valid() {
			continue
		}

		if !candidate.From.After(e.To) && !candidate.To.Before(e.From) {
			return true
		}
	}

	return false
}

// CheckCandidate runs the provisional conflict check used while the user is still
// picking dates. It returns nil when nothing is chosen yet.
func CheckCandidate(existing []domain.DateRange, candidate Candidate) error {
	r, ok := candidate.Provisional()
	if !ok || !Overlaps(existing, r) {
		return nil
	}

	reason := msgOverlap
	switch {
	case candidate.From != nil && candidate.To == nil:
		reason = msgStartBooked
	case candidate.From == nil && candidate.To != nil:
		reason = msgEndBooked
	}

	return &Error{Kind: KindDateRangeOverlap, Reason: reason}
}

func IsGuestCountValid(guests int, venue domain.Venue) bool {
	return guests >= 1 && guests <= venue.MaxGuests
}

// CanSubmitBooking returns nil when the booking may be sent. Guest count is checked
// first, then completeness, then overlap.
func CanSubmitBooking(
	candidate Candidate,
	existing []domain.DateRange,
	guests int,
	venue domain.Venue,
) error {
	if !IsGuestCountValid(guests, venue) {
		return &Error{Kind: KindGuestCountExceeded, Reason: guestReason(guests, venue)}
	}

	if !candidate.Complete() {
		reason := msgIncomplete
		switch {
		case candidate.From != nil:
			reason = msgMissingEnd
		case candidate.To != nil:
			reason = msgMissingStart
		}

		return &Error{Kind: KindIncompleteDateRange, Reason: reason}
	}

	r, _ := candidate.Provisional()
	if Overlaps(existing, r) {
		return &Error{Kind: KindDateRangeOverlap, Reason: msgOverlap}
	}

	return nil
}

// CheckGuests is the guest half of the verdict, for rendering next to the input.
func CheckGuests(guests int, venue domain.Venue) error {
	if IsGuestCountValid(guests, venue) {
		return nil
	}

	return &Error{Kind: KindGuestCountExceeded, Reason: guestReason(guests, venue)}
}

func guestReason(guests int, venue domain.Venue) string {
	if guests < 1 {
		return "At least 1 guest is required."
	}

	return fmt.Sprintf("Max %d guests allowed.", venue.MaxGuests)
}

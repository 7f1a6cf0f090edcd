package venues

import (
	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/domain"
)

// Verdict is what the booking widget renders after every change of dates or
// guests.
type Verdict struct {
	CanSubmit  bool   `json:"canSubmit"`
	Kind       string `json:"kind,omitempty"`
	Reason     string `json:"reason,omitempty"`
	DateError  string `json:"dateError,omitempty"`
	GuestError string `json:"guestError,omitempty"`
}

// Evaluate combines the provisional date check, the guest check and the submit
// decision into one Verdict.
func Evaluate(
	venue domain.Venue,
	existing []domain.DateRange,
	candidate availability.Candidate,
	guests int,
) Verdict {
	var v Verdict

	if err := availability.CheckCandidate(existing, candidate); err != nil {
		v.DateError = err.Error()
	}

	if err := availability.CheckGuests(guests, venue); err != nil {
		v.GuestError = err.Error()
	}

	err := availability.CanSubmitBooking(candidate, existing, guests, venue)
	if err == nil {
		v.CanSubmit = true
		return v
	}

	v.Reason = err.Error()
	if kind, ok := availability.KindOf(err); ok {
		v.Kind = kind.String()
	}

	return v
}

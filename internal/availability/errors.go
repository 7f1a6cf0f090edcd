package availability

import (
	"errors"
)

type Kind int

const (
	KindIncompleteDateRange Kind = iota + 1
	KindDateRangeOverlap
	KindGuestCountExceeded
)

func (k Kind) String() string {
	switch k {
	case KindIncompleteDateRange:
		return "IncompleteDateRange"
	case KindDateRangeOverlap:
		return "DateRangeOverlap"
	case KindGuestCountExceeded:
		return "GuestCountExceeded"
	default:
		return "Unknown"
	}
}

var (
	ErrIncompleteDateRange = errors.New("incomplete date range")
	ErrDateRangeOverlap    = errors.New("date range overlaps an existing booking")
	ErrGuestCountExceeded  = errors.New("guest count exceeded")
)

// Error is a booking verdict failure. Reason is ready to be shown to the user.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindIncompleteDateRange:
		return target == ErrIncompleteDateRange
	case KindDateRangeOverlap:
		return target == ErrDateRangeOverlap
	case KindGuestCountExceeded:
		return target == ErrGuestCountExceeded
	}

	return false
}

// KindOf reports the verdict kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}

	return 0, false
}

package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval rejects a date range whose end is not after its start.
	// Zero-length and inverted ranges are never silently clamped.
	ErrInvalidInterval = errors.New("invalid interval: end must be after start")

	// ErrVehicleUnavailable is returned when a confirm or activate transition
	// re-checks availability and finds a conflicting blocking booking.
	ErrVehicleUnavailable = errors.New("vehicle no longer available for the requested dates")

	// ErrBalanceNotSettled is returned when an invoice is signed with an
	// outstanding balance and no partial-signature override is in effect.
	ErrBalanceNotSettled = errors.New("balance not settled")
)

// IllegalTransitionError reports a status change not permitted from the
// current state. It names both sides so the caller can render a specific
// message instead of a generic failure.
type IllegalTransitionError struct {
	Entity  string
	Current string
	Action  string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition: action %q not permitted from status %q", e.Entity, e.Action, e.Current)
}

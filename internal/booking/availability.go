package booking

import "fleetrent-backend/internal/domain"

// WindowRef identifies a booking window across the two tables that can block
// a vehicle: reservations and invoice documents.
type WindowRef struct {
	Kind domain.TargetKind `json:"kind"`
	ID   int32             `json:"id"`
}

// BookingWindow is the slice of an existing booking the availability checker
// needs: its identity, occupied interval and current status. The persistence
// layer supplies these per vehicle; the engine never queries storage itself.
type BookingWindow struct {
	Ref      WindowRef `json:"ref"`
	Interval Interval  `json:"interval"`
	Status   string    `json:"status"`
}

type AvailabilityResult struct {
	Available bool `json:"available"`
	// Conflict names the first blocking booking that overlaps the request.
	Conflict *BookingWindow `json:"conflict,omitempty"`
}

// IsBlockingStatus reports whether a booking in the given status occupies the
// vehicle: at most one blocking booking may cover any instant for a vehicle.
func IsBlockingStatus(status string) bool {
	switch status {
	case string(domain.ReservationStatusConfirmed),
		string(domain.ReservationStatusInProgress),
		string(domain.DocumentStatusInvoiceActive),
		string(domain.DocumentStatusInvoiceSigned):
		return true
	}
	return false
}

// CheckAvailability decides whether the requested interval is free of
// conflicts among the existing bookings for a vehicle. exclude skips one
// window, so an edited booking does not conflict with itself; the zero
// WindowRef excludes nothing.
//
// The check is advisory at the moment it runs: it does not reserve the slot.
// The write path must call it again inside the commit transaction, since
// another booking may have been confirmed between check and commit.
func CheckAvailability(requested Interval, existing []BookingWindow, exclude WindowRef) (AvailabilityResult, error) {
	if err := requested.Validate(); err != nil {
		return AvailabilityResult{}, err
	}

	for i := range existing {
		w := existing[i]
		if w.Ref == exclude {
			continue
		}
		if !IsBlockingStatus(w.Status) {
			continue
		}
		if Overlaps(requested, w.Interval) {
			return AvailabilityResult{Available: false, Conflict: &w}, nil
		}
	}
	return AvailabilityResult{Available: true}, nil
}

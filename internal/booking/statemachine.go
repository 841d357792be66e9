package booking

import "fleetrent-backend/internal/domain"

type ReservationAction string

const (
	ReservationConfirm  ReservationAction = "confirm"
	ReservationStart    ReservationAction = "start"
	ReservationComplete ReservationAction = "complete"
	ReservationCancel   ReservationAction = "cancel"
)

type DocumentAction string

const (
	DocumentConvert  DocumentAction = "convert"
	DocumentActivate DocumentAction = "activate"
	DocumentSign     DocumentAction = "sign"
	DocumentCancel   DocumentAction = "cancel"
)

// The legal-transition tables are the single chokepoint for status changes.
// A status absent from the table is terminal; an action absent from a row is
// illegal from that status.
var reservationTransitions = map[domain.ReservationStatus]map[ReservationAction]domain.ReservationStatus{
	domain.ReservationStatusPending: {
		ReservationConfirm: domain.ReservationStatusConfirmed,
		ReservationCancel:  domain.ReservationStatusCancelled,
	},
	domain.ReservationStatusConfirmed: {
		ReservationStart:  domain.ReservationStatusInProgress,
		ReservationCancel: domain.ReservationStatusCancelled,
	},
	domain.ReservationStatusInProgress: {
		ReservationComplete: domain.ReservationStatusCompleted,
	},
}

var documentTransitions = map[domain.DocumentStatus]map[DocumentAction]domain.DocumentStatus{
	domain.DocumentStatusQuote: {
		// Converting marks the original quote as superseded; the caller
		// creates the replacement invoice record in invoice_pending.
		DocumentConvert: domain.DocumentStatusConverted,
		DocumentCancel:  domain.DocumentStatusCancelled,
	},
	domain.DocumentStatusInvoicePending: {
		DocumentActivate: domain.DocumentStatusInvoiceActive,
		DocumentCancel:   domain.DocumentStatusCancelled,
	},
	domain.DocumentStatusInvoiceActive: {
		DocumentSign:   domain.DocumentStatusInvoiceSigned,
		DocumentCancel: domain.DocumentStatusCancelled,
	},
}

// NextReservationStatus applies an action to a reservation status, returning
// the successor status or an IllegalTransitionError.
func NextReservationStatus(current domain.ReservationStatus, action ReservationAction) (domain.ReservationStatus, error) {
	if next, ok := reservationTransitions[current][action]; ok {
		return next, nil
	}
	return "", &IllegalTransitionError{Entity: "reservation", Current: string(current), Action: string(action)}
}

// NextDocumentStatus applies an action to a document status, returning the
// successor status or an IllegalTransitionError.
func NextDocumentStatus(current domain.DocumentStatus, action DocumentAction) (domain.DocumentStatus, error) {
	if next, ok := documentTransitions[current][action]; ok {
		return next, nil
	}
	return "", &IllegalTransitionError{Entity: "document", Current: string(current), Action: string(action)}
}

// ReservationTerminal reports whether no further status change is permitted.
func ReservationTerminal(status domain.ReservationStatus) bool {
	return len(reservationTransitions[status]) == 0
}

// DocumentTerminal reports whether no further status change is permitted.
func DocumentTerminal(status domain.DocumentStatus) bool {
	return len(documentTransitions[status]) == 0
}

// ConfirmReservation applies the confirm action after re-checking that the
// vehicle is still free for the reservation's own interval. Availability is
// re-validated here, not only at creation time, because other bookings may
// have been confirmed in the interim.
func ConfirmReservation(current domain.ReservationStatus, requested Interval, existing []BookingWindow, self WindowRef) (domain.ReservationStatus, error) {
	next, err := NextReservationStatus(current, ReservationConfirm)
	if err != nil {
		return "", err
	}
	avail, err := CheckAvailability(requested, existing, self)
	if err != nil {
		return "", err
	}
	if !avail.Available {
		return "", ErrVehicleUnavailable
	}
	return next, nil
}

// ActivateInvoice applies the activate action after the same availability
// re-check, since an active invoice blocks the vehicle.
func ActivateInvoice(current domain.DocumentStatus, requested Interval, existing []BookingWindow, self WindowRef) (domain.DocumentStatus, error) {
	next, err := NextDocumentStatus(current, DocumentActivate)
	if err != nil {
		return "", err
	}
	avail, err := CheckAvailability(requested, existing, self)
	if err != nil {
		return "", err
	}
	if !avail.Available {
		return "", ErrVehicleUnavailable
	}
	return next, nil
}

// SignInvoice applies the sign action, gated on the reconciled balance: the
// invoice must be settled unless the agency explicitly allows signing with an
// outstanding balance.
func SignInvoice(current domain.DocumentStatus, rec ReconciliationResult, allowPartial bool) (domain.DocumentStatus, error) {
	next, err := NextDocumentStatus(current, DocumentSign)
	if err != nil {
		return "", err
	}
	if rec.BalanceDueCents > 0 && !allowPartial {
		return "", ErrBalanceNotSettled
	}
	return next, nil
}

package domain

import "time"

// TargetKind says which entity a payment settles against.
type TargetKind string

const (
	TargetKindReservation TargetKind = "reservation"
	TargetKindDocument    TargetKind = "document"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCheque   PaymentMethod = "cheque"
)

// PaymentStatus is derived by reconciliation, never stored incrementally.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Payment struct {
	ID         int32         `json:"id"`
	TargetKind TargetKind    `json:"target_kind"`
	TargetID   int32         `json:"target_id"`
	AmountCents int64        `json:"amount_cents"`
	Method     PaymentMethod `json:"method"`
	// Reference is an external receipt identifier handed to the client.
	Reference string    `json:"reference"`
	PaidOn    time.Time `json:"paid_on"`
	CreatedOn time.Time `json:"created_on"`
}

package domain

import "time"

type DocumentKind string

const (
	DocumentKindQuote   DocumentKind = "quote"
	DocumentKindInvoice DocumentKind = "invoice"
)

type DocumentStatus string

const (
	DocumentStatusQuote          DocumentStatus = "quote"
	// DocumentStatusConverted marks a quote that has been turned into an
	// invoice. Terminal, distinct from cancelled: the quote record is kept but
	// superseded by the invoice that replaced it.
	DocumentStatusConverted      DocumentStatus = "converted"
	DocumentStatusInvoicePending DocumentStatus = "invoice_pending"
	DocumentStatusInvoiceActive  DocumentStatus = "invoice_active"
	DocumentStatusInvoiceSigned  DocumentStatus = "invoice_signed"
	DocumentStatusCancelled      DocumentStatus = "cancelled"
)

// Document is a quote or invoice. Kind never reverts: a quote converts to an
// invoice exactly once, producing a new record with a fresh number.
type Document struct {
	ID              int32          `json:"id"`
	Kind            DocumentKind   `json:"kind"`
	Number          string         `json:"number"`
	VehicleID       int32          `json:"vehicle_id"`
	ClientID        int32          `json:"client_id"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	DailyRateCents  int64          `json:"daily_rate_cents"`
	DeliveryFeeCents int64         `json:"delivery_fee_cents"`
	DriverFeeCents  int64          `json:"driver_fee_cents"`
	DiscountCents   int64          `json:"discount_cents"`
	DepositCents    int64          `json:"deposit_cents"`
	TotalCents      int64          `json:"total_cents"`
	VATCents        int64          `json:"vat_cents"`
	BalanceDueCents int64          `json:"balance_due_cents"`
	Status          DocumentStatus `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	// ConvertedFromID links an invoice back to the quote it superseded.
	ConvertedFromID *int32    `json:"converted_from_id,omitempty"`
	Notes           string    `json:"notes"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

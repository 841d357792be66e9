package domain

import "time"

type DepositPolicyKind string

const (
	DepositPolicyFixed   DepositPolicyKind = "fixed"
	DepositPolicyPercent DepositPolicyKind = "percent"
)

// Settings holds the agency-wide knobs the booking engine reads through the
// settings provider: how deposits are derived, the flat VAT rate, and whether
// an invoice may be signed with an outstanding balance.
type Settings struct {
	ID                    int32             `json:"id"`
	DepositPolicy         DepositPolicyKind `json:"deposit_policy"`
	DepositFixedCents     int64             `json:"deposit_fixed_cents"`
	DepositPercent        int               `json:"deposit_percent"`
	VATPercent            int               `json:"vat_percent"`
	AllowPartialSignature bool              `json:"allow_partial_signature"`
	CurrencyCode          string            `json:"currency_code"`
	UpdatedOn             time.Time         `json:"updated_on"`
}

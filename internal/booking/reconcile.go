package booking

import "fleetrent-backend/internal/domain"

type ReconciliationResult struct {
	AmountPaidCents int64                `json:"amount_paid_cents"`
	BalanceDueCents int64                `json:"balance_due_cents"`
	Status          domain.PaymentStatus `json:"status"`
	// Overpaid flags payments exceeding the total. Surfaced for manual
	// reconciliation; refunds are handled outside the engine.
	Overpaid bool `json:"overpaid"`
}

// Reconcile recomputes the paid amount and balance from the full payment list
// every time. There are no incremental counters that can drift, so feeding it
// the same ledger twice yields the same result.
func Reconcile(totalCents int64, payments []domain.Payment) ReconciliationResult {
	var paid int64
	for _, p := range payments {
		paid += p.AmountCents
	}

	res := ReconciliationResult{
		AmountPaidCents: paid,
		BalanceDueCents: totalCents - paid,
	}

	switch {
	case paid == 0 && totalCents > 0:
		res.Status = domain.PaymentStatusPending
	case res.BalanceDueCents <= 0:
		res.Status = domain.PaymentStatusPaid
	default:
		res.Status = domain.PaymentStatusPartial
	}

	if paid > totalCents {
		res.Overpaid = true
	}
	return res
}

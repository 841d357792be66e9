package booking

import "fleetrent-backend/internal/domain"

// DepositPolicy decides how the deposit is derived from the total: either a
// fixed amount or a percentage, per the agency settings.
type DepositPolicy struct {
	Kind       domain.DepositPolicyKind
	FixedCents int64
	Percent    int
}

type PricingInput struct {
	DailyRateCents   int64
	Interval         Interval
	DeliveryFeeCents int64
	DriverFeeCents   int64
	DiscountCents    int64
	Deposit          DepositPolicy
	AmountPaidCents  int64
}

type PricingResult struct {
	DurationDays    int   `json:"duration_days"`
	SubtotalCents   int64 `json:"subtotal_cents"`
	TotalCents      int64 `json:"total_cents"`
	DepositCents    int64 `json:"deposit_cents"`
	BalanceDueCents int64 `json:"balance_due_cents"`
	// OverDiscounted is set when the discount pushed the raw total below zero.
	// The total is floored at 0; whether to block the save is the caller's call.
	OverDiscounted bool `json:"over_discounted"`
}

// ComputePricing derives the full cost breakdown for a rental period. It is a
// pure function of its input: recomputing with identical arguments yields an
// identical result.
func ComputePricing(in PricingInput) (PricingResult, error) {
	days, err := DurationDays(in.Interval)
	if err != nil {
		return PricingResult{}, err
	}

	subtotal := in.DailyRateCents * int64(days)
	raw := subtotal + in.DeliveryFeeCents + in.DriverFeeCents - in.DiscountCents

	res := PricingResult{
		DurationDays:  days,
		SubtotalCents: subtotal,
		TotalCents:    raw,
	}
	if raw < 0 {
		res.TotalCents = 0
		res.OverDiscounted = true
	}

	res.DepositCents = depositFor(res.TotalCents, in.Deposit)
	res.BalanceDueCents = res.TotalCents - in.AmountPaidCents
	return res, nil
}

func depositFor(totalCents int64, p DepositPolicy) int64 {
	switch p.Kind {
	case domain.DepositPolicyPercent:
		// Half-up rounding on the percentage.
		return (totalCents*int64(p.Percent) + 50) / 100
	default:
		return p.FixedCents
	}
}

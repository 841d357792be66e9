// Package booking is the rental booking engine: date-interval math, pricing,
// availability checking, the reservation/document state machine, and payment
// reconciliation. Every function is pure and side-effect-free; callers own
// all I/O and pass the engine the records it needs.
package booking

import "time"

const billableDay = 24 * time.Hour

// Interval is a half-open time range [Start, End) used both for billing-day
// computation and for conflict detection.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a validated interval.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (i Interval) Validate() error {
	if !i.End.After(i.Start) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two intervals intersect. Half-open semantics: a
// booking ending at 10:00 does not conflict with one starting at 10:00, which
// is what allows same-day back-to-back handovers.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// DurationDays returns the number of billable days for the interval: any
// partial day rounds up, and a same-day rental counts as one day.
func DurationDays(i Interval) (int, error) {
	if err := i.Validate(); err != nil {
		return 0, err
	}
	d := i.End.Sub(i.Start)
	days := int(d / billableDay)
	if d%billableDay > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

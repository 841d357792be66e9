package booking

import (
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func payments(amounts ...int64) []domain.Payment {
	out := make([]domain.Payment, len(amounts))
	for i, a := range amounts {
		out[i] = domain.Payment{ID: int32(i + 1), AmountCents: a}
	}
	return out
}

func TestReconcile(t *testing.T) {
	t.Run("No payments is pending", func(t *testing.T) {
		rec := Reconcile(100000, nil)
		assert.Equal(t, int64(0), rec.AmountPaidCents)
		assert.Equal(t, int64(100000), rec.BalanceDueCents)
		assert.Equal(t, domain.PaymentStatusPending, rec.Status)
		assert.False(t, rec.Overpaid)
	})

	t.Run("Partial payment", func(t *testing.T) {
		rec := Reconcile(100000, payments(40000))
		assert.Equal(t, int64(40000), rec.AmountPaidCents)
		assert.Equal(t, int64(60000), rec.BalanceDueCents)
		assert.Equal(t, domain.PaymentStatusPartial, rec.Status)
	})

	t.Run("Exact settlement", func(t *testing.T) {
		// total 1000, payments 400 + 600.
		rec := Reconcile(100000, payments(40000, 60000))
		assert.Equal(t, int64(0), rec.BalanceDueCents)
		assert.Equal(t, domain.PaymentStatusPaid, rec.Status)
		assert.False(t, rec.Overpaid)
	})

	t.Run("Third payment overpays", func(t *testing.T) {
		rec := Reconcile(100000, payments(40000, 60000, 10000))
		assert.Equal(t, int64(110000), rec.AmountPaidCents)
		assert.Equal(t, int64(-10000), rec.BalanceDueCents)
		assert.Equal(t, domain.PaymentStatusPaid, rec.Status)
		assert.True(t, rec.Overpaid)
	})

	t.Run("Idempotent over the same ledger", func(t *testing.T) {
		list := payments(25000, 25000, 10000)
		first := Reconcile(100000, list)
		second := Reconcile(100000, list)
		assert.Equal(t, first, second)
	})

	t.Run("Zero total with no payments is settled", func(t *testing.T) {
		rec := Reconcile(0, nil)
		assert.Equal(t, domain.PaymentStatusPaid, rec.Status)
		assert.False(t, rec.Overpaid)
	})
}

package booking

import (
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func window(t *testing.T, id int32, status domain.ReservationStatus, start, end string) BookingWindow {
	t.Helper()
	return BookingWindow{
		Ref:      WindowRef{Kind: domain.TargetKindReservation, ID: id},
		Interval: mustInterval(t, date(start), date(end)),
		Status:   string(status),
	}
}

func TestCheckAvailability(t *testing.T) {
	t.Run("Conflict with blocking booking", func(t *testing.T) {
		// Existing confirmed booking Jan 10-15; request Jan 12-18.
		existing := []BookingWindow{
			window(t, 7, domain.ReservationStatusConfirmed, "2024-01-10", "2024-01-15"),
		}
		requested := mustInterval(t, date("2024-01-12"), date("2024-01-18"))

		res, err := CheckAvailability(requested, existing, WindowRef{})
		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.NotNil(t, res.Conflict)
		assert.Equal(t, int32(7), res.Conflict.Ref.ID)
	})

	t.Run("Adjacent booking is free", func(t *testing.T) {
		// Existing Jan 10-12; request Jan 12-14: same-day handover allowed.
		existing := []BookingWindow{
			window(t, 7, domain.ReservationStatusConfirmed, "2024-01-10", "2024-01-12"),
		}
		requested := mustInterval(t, date("2024-01-12"), date("2024-01-14"))

		res, err := CheckAvailability(requested, existing, WindowRef{})
		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Nil(t, res.Conflict)
	})

	t.Run("Non-blocking statuses ignored", func(t *testing.T) {
		existing := []BookingWindow{
			window(t, 1, domain.ReservationStatusPending, "2024-01-10", "2024-01-15"),
			window(t, 2, domain.ReservationStatusCancelled, "2024-01-10", "2024-01-15"),
			window(t, 3, domain.ReservationStatusCompleted, "2024-01-10", "2024-01-15"),
		}
		requested := mustInterval(t, date("2024-01-12"), date("2024-01-18"))

		res, err := CheckAvailability(requested, existing, WindowRef{})
		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("Active invoice blocks", func(t *testing.T) {
		existing := []BookingWindow{
			{
				Ref:      WindowRef{Kind: domain.TargetKindDocument, ID: 4},
				Interval: mustInterval(t, date("2024-01-10"), date("2024-01-15")),
				Status:   string(domain.DocumentStatusInvoiceActive),
			},
		}
		requested := mustInterval(t, date("2024-01-14"), date("2024-01-16"))

		res, err := CheckAvailability(requested, existing, WindowRef{})
		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, domain.TargetKindDocument, res.Conflict.Ref.Kind)
	})

	t.Run("Excluded booking does not conflict with itself", func(t *testing.T) {
		existing := []BookingWindow{
			window(t, 7, domain.ReservationStatusConfirmed, "2024-01-10", "2024-01-15"),
		}
		requested := mustInterval(t, date("2024-01-11"), date("2024-01-14"))

		res, err := CheckAvailability(requested, existing, WindowRef{Kind: domain.TargetKindReservation, ID: 7})
		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("Invalid interval rejected", func(t *testing.T) {
		bad := Interval{Start: date("2024-01-18"), End: date("2024-01-12")}
		_, err := CheckAvailability(bad, nil, WindowRef{})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("No existing bookings", func(t *testing.T) {
		requested := mustInterval(t, date("2024-01-12"), date("2024-01-18"))
		res, err := CheckAvailability(requested, nil, WindowRef{})
		assert.NoError(t, err)
		assert.True(t, res.Available)
	})
}

func TestIsBlockingStatus(t *testing.T) {
	blocking := []string{"confirmed", "in_progress", "invoice_active", "invoice_signed"}
	for _, s := range blocking {
		assert.True(t, IsBlockingStatus(s), s)
	}
	free := []string{"pending", "completed", "cancelled", "quote", "converted", "invoice_pending", ""}
	for _, s := range free {
		assert.False(t, IsBlockingStatus(s), s)
	}
}

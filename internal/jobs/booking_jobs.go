package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/logger"
)

// ExpireStalePendingReservations cancels pending reservations whose start
// date passed the configured grace period without a confirmation, so they
// stop showing up in advisory availability results.
func (jr *JobRunner) ExpireStalePendingReservations() {
	jr.runWithRecovery("ExpireStalePendingReservations", func() {
		ctx := context.Background()

		ttl := time.Duration(jr.config.Booking.PendingReservationTTLHours) * time.Hour
		cutoff := time.Now().Add(-ttl)

		stale, err := jr.store.ListStalePending(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending reservations", "error", err)
			return
		}

		count := 0
		for _, reservation := range stale {
			if _, err := jr.services.Reservations.Cancel(ctx, reservation.ID); err != nil {
				logger.Error("Failed to cancel stale reservation",
					"reservation_id", reservation.ID, "error", err)
				continue
			}
			logger.Debug("Cancelled stale pending reservation",
				"reservation_id", reservation.ID,
				"vehicle_id", reservation.VehicleID,
				"start_date", reservation.StartDate.Format("2006-01-02"))
			count++
		}

		logger.Info("Expired stale pending reservations", "count", count)
	})
}

// SendBalanceReminders emails clients who have an active invoice with an
// outstanding balance.
func (jr *JobRunner) SendBalanceReminders() {
	jr.runWithRecovery("SendBalanceReminders", func() {
		ctx := context.Background()

		invoices, err := jr.store.ListUnsettledActive(ctx)
		if err != nil {
			logger.Error("Failed to list unsettled invoices", "error", err)
			return
		}

		count := 0
		for _, invoice := range invoices {
			client, err := jr.store.ClientRepository.GetByID(ctx, invoice.ClientID)
			if err != nil {
				logger.Error("Failed to load client for reminder",
					"document_id", invoice.ID, "client_id", invoice.ClientID, "error", err)
				continue
			}
			if client.Email == "" {
				continue
			}
			if err := jr.services.Email.SendBalanceReminder(ctx, client.Email, client.Name, invoice.Number, invoice.BalanceDueCents); err != nil {
				logger.Error("Failed to send balance reminder",
					"document_id", invoice.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent balance reminders", "count", count)
	})
}

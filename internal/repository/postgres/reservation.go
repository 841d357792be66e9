package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type reservationRepository struct {
	q Querier
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{q: db}
}

// NewReservationRepositoryWithTx scopes the repository to a transaction, for
// the confirm path that re-validates availability before commit.
func NewReservationRepositoryWithTx(tx *sql.Tx) repository.ReservationRepository {
	return &reservationRepository{q: tx}
}

const reservationColumns = `id, vehicle_id, client_id, start_date, end_date, daily_rate_cents, delivery_fee_cents, driver_fee_cents, discount_cents, deposit_cents, total_cents, balance_due_cents, status, payment_status, COALESCE(notes, ''), created_on, updated_on`

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (vehicle_id, client_id, start_date, end_date, daily_rate_cents, delivery_fee_cents, driver_fee_cents, discount_cents, deposit_cents, total_cents, balance_due_cents, status, payment_status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query,
		rv.VehicleID, rv.ClientID, rv.StartDate, rv.EndDate,
		rv.DailyRateCents, rv.DeliveryFeeCents, rv.DriverFeeCents, rv.DiscountCents,
		rv.DepositCents, rv.TotalCents, rv.BalanceDueCents,
		rv.Status, rv.PaymentStatus, rv.Notes, now, now,
	).Scan(&rv.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&rv.ID, &rv.VehicleID, &rv.ClientID, &rv.StartDate, &rv.EndDate,
		&rv.DailyRateCents, &rv.DeliveryFeeCents, &rv.DriverFeeCents, &rv.DiscountCents,
		&rv.DepositCents, &rv.TotalCents, &rv.BalanceDueCents,
		&rv.Status, &rv.PaymentStatus, &rv.Notes, &rv.CreatedOn, &rv.UpdatedOn,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rv, nil
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET start_date=$1, end_date=$2, discount_cents=$3, deposit_cents=$4, total_cents=$5, balance_due_cents=$6, status=$7, payment_status=$8, notes=$9, updated_on=$10 WHERE id=$11`
	_, err := r.q.ExecContext(ctx, query,
		rv.StartDate, rv.EndDate, rv.DiscountCents, rv.DepositCents,
		rv.TotalCents, rv.BalanceDueCents, rv.Status, rv.PaymentStatus, rv.Notes,
		time.Now(), rv.ID,
	)
	return err
}

func (r *reservationRepository) List(ctx context.Context, vehicleID, clientID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	base := `FROM reservations WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if vehicleID != 0 {
		base += fmt.Sprintf(" AND vehicle_id = $%d", idx)
		args = append(args, vehicleID)
		idx++
	}
	if clientID != 0 {
		base += fmt.Sprintf(" AND client_id = $%d", idx)
		args = append(args, clientID)
		idx++
	}
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}

	var count int32
	if err := r.q.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + reservationColumns + " " + base + fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(
			&rv.ID, &rv.VehicleID, &rv.ClientID, &rv.StartDate, &rv.EndDate,
			&rv.DailyRateCents, &rv.DeliveryFeeCents, &rv.DriverFeeCents, &rv.DiscountCents,
			&rv.DepositCents, &rv.TotalCents, &rv.BalanceDueCents,
			&rv.Status, &rv.PaymentStatus, &rv.Notes, &rv.CreatedOn, &rv.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, count, rows.Err()
}

func (r *reservationRepository) ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error) {
	query := `SELECT id, start_date, end_date, status FROM reservations WHERE vehicle_id = $1 AND status IN ($2, $3)`
	rows, err := r.q.QueryContext(ctx, query, vehicleID,
		domain.ReservationStatusConfirmed, domain.ReservationStatusInProgress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []booking.BookingWindow
	for rows.Next() {
		var (
			id         int32
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&id, &start, &end, &status); err != nil {
			return nil, err
		}
		windows = append(windows, booking.BookingWindow{
			Ref:      booking.WindowRef{Kind: domain.TargetKindReservation, ID: id},
			Interval: booking.Interval{Start: start, End: end},
			Status:   status,
		})
	}
	return windows, rows.Err()
}

func (r *reservationRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 AND start_date < $2`
	rows, err := r.q.QueryContext(ctx, query, domain.ReservationStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(
			&rv.ID, &rv.VehicleID, &rv.ClientID, &rv.StartDate, &rv.EndDate,
			&rv.DailyRateCents, &rv.DeliveryFeeCents, &rv.DriverFeeCents, &rv.DiscountCents,
			&rv.DepositCents, &rv.TotalCents, &rv.BalanceDueCents,
			&rv.Status, &rv.PaymentStatus, &rv.Notes, &rv.CreatedOn, &rv.UpdatedOn,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

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

type documentRepository struct {
	q Querier
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{q: db}
}

// NewDocumentRepositoryWithTx scopes the repository to a transaction, for the
// quote conversion that must supersede the quote and create the invoice
// atomically.
func NewDocumentRepositoryWithTx(tx *sql.Tx) repository.DocumentRepository {
	return &documentRepository{q: tx}
}

const documentColumns = `id, kind, number, vehicle_id, client_id, start_date, end_date, daily_rate_cents, delivery_fee_cents, driver_fee_cents, discount_cents, deposit_cents, total_cents, vat_cents, balance_due_cents, status, payment_status, converted_from_id, COALESCE(notes, ''), created_on, updated_on`

func (r *documentRepository) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (kind, number, vehicle_id, client_id, start_date, end_date, daily_rate_cents, delivery_fee_cents, driver_fee_cents, discount_cents, deposit_cents, total_cents, vat_cents, balance_due_cents, status, payment_status, converted_from_id, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query,
		d.Kind, d.Number, d.VehicleID, d.ClientID, d.StartDate, d.EndDate,
		d.DailyRateCents, d.DeliveryFeeCents, d.DriverFeeCents, d.DiscountCents,
		d.DepositCents, d.TotalCents, d.VATCents, d.BalanceDueCents,
		d.Status, d.PaymentStatus, d.ConvertedFromID, d.Notes, now, now,
	).Scan(&d.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	d := &domain.Document{}
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Kind, &d.Number, &d.VehicleID, &d.ClientID, &d.StartDate, &d.EndDate,
		&d.DailyRateCents, &d.DeliveryFeeCents, &d.DriverFeeCents, &d.DiscountCents,
		&d.DepositCents, &d.TotalCents, &d.VATCents, &d.BalanceDueCents,
		&d.Status, &d.PaymentStatus, &d.ConvertedFromID, &d.Notes, &d.CreatedOn, &d.UpdatedOn,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return d, nil
}

func (r *documentRepository) Update(ctx context.Context, d *domain.Document) error {
	query := `UPDATE documents SET start_date=$1, end_date=$2, discount_cents=$3, deposit_cents=$4, total_cents=$5, vat_cents=$6, balance_due_cents=$7, status=$8, payment_status=$9, notes=$10, updated_on=$11 WHERE id=$12`
	_, err := r.q.ExecContext(ctx, query,
		d.StartDate, d.EndDate, d.DiscountCents, d.DepositCents,
		d.TotalCents, d.VATCents, d.BalanceDueCents, d.Status, d.PaymentStatus, d.Notes,
		time.Now(), d.ID,
	)
	return err
}

func (r *documentRepository) List(ctx context.Context, kind, status string, clientID int32, page, pageSize int32) ([]domain.Document, int32, error) {
	base := `FROM documents WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if kind != "" {
		base += fmt.Sprintf(" AND kind = $%d", idx)
		args = append(args, kind)
		idx++
	}
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}
	if clientID != 0 {
		base += fmt.Sprintf(" AND client_id = $%d", idx)
		args = append(args, clientID)
		idx++
	}

	var count int32
	if err := r.q.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + documentColumns + " " + base + fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(
			&d.ID, &d.Kind, &d.Number, &d.VehicleID, &d.ClientID, &d.StartDate, &d.EndDate,
			&d.DailyRateCents, &d.DeliveryFeeCents, &d.DriverFeeCents, &d.DiscountCents,
			&d.DepositCents, &d.TotalCents, &d.VATCents, &d.BalanceDueCents,
			&d.Status, &d.PaymentStatus, &d.ConvertedFromID, &d.Notes, &d.CreatedOn, &d.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, count, rows.Err()
}

func (r *documentRepository) ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error) {
	query := `SELECT id, start_date, end_date, status FROM documents WHERE vehicle_id = $1 AND status IN ($2, $3)`
	rows, err := r.q.QueryContext(ctx, query, vehicleID,
		domain.DocumentStatusInvoiceActive, domain.DocumentStatusInvoiceSigned)
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
			Ref:      booking.WindowRef{Kind: domain.TargetKindDocument, ID: id},
			Interval: booking.Interval{Start: start, End: end},
			Status:   status,
		})
	}
	return windows, rows.Err()
}

func (r *documentRepository) ListUnsettledActive(ctx context.Context) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = $1 AND balance_due_cents > 0`
	rows, err := r.q.QueryContext(ctx, query, domain.DocumentStatusInvoiceActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(
			&d.ID, &d.Kind, &d.Number, &d.VehicleID, &d.ClientID, &d.StartDate, &d.EndDate,
			&d.DailyRateCents, &d.DeliveryFeeCents, &d.DriverFeeCents, &d.DiscountCents,
			&d.DepositCents, &d.TotalCents, &d.VATCents, &d.BalanceDueCents,
			&d.Status, &d.PaymentStatus, &d.ConvertedFromID, &d.Notes, &d.CreatedOn, &d.UpdatedOn,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

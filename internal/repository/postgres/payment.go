package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type paymentRepository struct {
	q Querier
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{q: db}
}

func NewPaymentRepositoryWithTx(tx *sql.Tx) repository.PaymentRepository {
	return &paymentRepository{q: tx}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (target_kind, target_id, amount_cents, method, reference, paid_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.q.QueryRowContext(ctx, query,
		p.TargetKind, p.TargetID, p.AmountCents, p.Method, p.Reference, p.PaidOn, time.Now(),
	).Scan(&p.ID)
}

func (r *paymentRepository) Retarget(ctx context.Context, from domain.TargetKind, fromID int32, to domain.TargetKind, toID int32) error {
	query := `UPDATE payments SET target_kind = $1, target_id = $2 WHERE target_kind = $3 AND target_id = $4`
	_, err := r.q.ExecContext(ctx, query, to, toID, from, fromID)
	return err
}

func (r *paymentRepository) ListByTarget(ctx context.Context, kind domain.TargetKind, targetID int32) ([]domain.Payment, error) {
	query := `SELECT id, target_kind, target_id, amount_cents, method, COALESCE(reference, ''), paid_on, created_on
	          FROM payments WHERE target_kind = $1 AND target_id = $2 ORDER BY paid_on ASC, id ASC`
	rows, err := r.q.QueryContext(ctx, query, kind, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TargetKind, &p.TargetID, &p.AmountCents, &p.Method, &p.Reference, &p.PaidOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type settingsRepository struct {
	q Querier
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{q: db}
}

// Get returns the single agency settings row.
func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	s := &domain.Settings{}
	query := `SELECT id, deposit_policy, deposit_fixed_cents, deposit_percent, vat_percent, allow_partial_signature, currency_code, updated_on FROM settings LIMIT 1`
	err := r.q.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.DepositPolicy, &s.DepositFixedCents, &s.DepositPercent,
		&s.VATPercent, &s.AllowPartialSignature, &s.CurrencyCode, &s.UpdatedOn,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *domain.Settings) error {
	query := `UPDATE settings SET deposit_policy=$1, deposit_fixed_cents=$2, deposit_percent=$3, vat_percent=$4, allow_partial_signature=$5, currency_code=$6, updated_on=$7 WHERE id=$8`
	_, err := r.q.ExecContext(ctx, query,
		s.DepositPolicy, s.DepositFixedCents, s.DepositPercent,
		s.VATPercent, s.AllowPartialSignature, s.CurrencyCode, time.Now(), s.ID,
	)
	return err
}

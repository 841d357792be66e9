package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleRepository struct {
	q Querier
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{q: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (plate, make, model, category, daily_rate_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query, v.Plate, v.Make, v.Model, v.Category, v.DailyRateCents, v.Status, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, plate, make, model, category, daily_rate_cents, status, created_on, updated_on FROM vehicles WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Category, &v.DailyRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET plate=$1, make=$2, model=$3, category=$4, daily_rate_cents=$5, status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.q.ExecContext(ctx, query, v.Plate, v.Make, v.Model, v.Category, v.DailyRateCents, v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	base := `FROM vehicles WHERE 1=1`
	args := []interface{}{}
	idx := 1
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
	query := `SELECT id, plate, make, model, category, daily_rate_cents, status, created_on, updated_on ` + base +
		fmt.Sprintf(" ORDER BY plate ASC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Category, &v.DailyRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	return out, count, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type clientRepository struct {
	q Querier
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{q: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, email, phone, license_number, blocked, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.LicenseNumber, c.Blocked, c.Notes, now, now).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, email, phone, license_number, blocked, COALESCE(notes, ''), created_on, updated_on FROM clients WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.LicenseNumber, &c.Blocked, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, email=$2, phone=$3, license_number=$4, blocked=$5, notes=$6, updated_on=$7 WHERE id=$8`
	_, err := r.q.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.LicenseNumber, c.Blocked, c.Notes, time.Now(), c.ID)
	return err
}

func (r *clientRepository) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Client, int32, error) {
	base := `FROM clients WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if search != "" {
		base += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", idx, idx)
		args = append(args, "%"+search+"%")
		idx++
	}

	var count int32
	if err := r.q.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, email, phone, license_number, blocked, COALESCE(notes, ''), created_on, updated_on ` + base +
		fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.LicenseNumber, &c.Blocked, &c.Notes, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, count, rows.Err()
}

package postgres

import (
	"database/sql"
	"errors"

	"fleetrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.ClientRepository
	repository.ReservationRepository
	repository.DocumentRepository
	repository.PaymentRepository
	repository.SettingsRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleRepository:     NewVehicleRepository(db),
		ClientRepository:      NewClientRepository(db),
		ReservationRepository: NewReservationRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		SettingsRepository:    NewSettingsRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}

// DB exposes the underlying handle for services that open transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

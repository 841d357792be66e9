package repository

import (
	"context"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	List(ctx context.Context, query string, page, pageSize int32) ([]domain.Client, int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	List(ctx context.Context, vehicleID, clientID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	// ListBlockingWindows returns the occupied intervals for a vehicle in
	// blocking statuses, for the availability checker.
	ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error)
	// ListStalePending returns pending reservations whose start date passed
	// before the cutoff without a confirmation.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id int32) (*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	List(ctx context.Context, kind, status string, clientID int32, page, pageSize int32) ([]domain.Document, int32, error)
	ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error)
	// ListUnsettledActive returns active invoices with an outstanding
	// balance, for the reminder job.
	ListUnsettledActive(ctx context.Context) ([]domain.Document, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByTarget(ctx context.Context, kind domain.TargetKind, targetID int32) ([]domain.Payment, error)
	// Retarget moves a ledger from one booking to another, used when an
	// invoice supersedes a quote so its payments follow it.
	Retarget(ctx context.Context, from domain.TargetKind, fromID int32, to domain.TargetKind, toID int32) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

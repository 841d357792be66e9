package service_test

import (
	"context"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepo struct{ mock.Mock }

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) List(ctx context.Context, query string, page, pageSize int32) ([]domain.Client, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Client), args.Get(1).(int32), args.Error(2)
}

type MockReservationRepo struct{ mock.Mock }

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepo) List(ctx context.Context, vehicleID, clientID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, vehicleID, clientID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

func (m *MockReservationRepo) ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingWindow), args.Error(1)
}

func (m *MockReservationRepo) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockDocumentRepo struct{ mock.Mock }

func (m *MockDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepo) List(ctx context.Context, kind, status string, clientID int32, page, pageSize int32) ([]domain.Document, int32, error) {
	args := m.Called(ctx, kind, status, clientID, page, pageSize)
	return args.Get(0).([]domain.Document), args.Get(1).(int32), args.Error(2)
}

func (m *MockDocumentRepo) ListBlockingWindows(ctx context.Context, vehicleID int32) ([]booking.BookingWindow, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingWindow), args.Error(1)
}

func (m *MockDocumentRepo) ListUnsettledActive(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepo) ListByTarget(ctx context.Context, kind domain.TargetKind, targetID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) Retarget(ctx context.Context, from domain.TargetKind, fromID int32, to domain.TargetKind, toID int32) error {
	return m.Called(ctx, from, fromID, to, toID).Error(0)
}

type MockSettingsRepo struct{ mock.Mock }

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Update(ctx context.Context, s *domain.Settings) error {
	return m.Called(ctx, s).Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendReservationConfirmation(ctx context.Context, clientEmail, clientName, vehicleName string, start, end time.Time) error {
	return m.Called(ctx, clientEmail, clientName, vehicleName, start, end).Error(0)
}

func (m *MockEmailService) SendInvoiceIssued(ctx context.Context, clientEmail, clientName, number string, totalCents int64) error {
	return m.Called(ctx, clientEmail, clientName, number, totalCents).Error(0)
}

func (m *MockEmailService) SendBalanceReminder(ctx context.Context, clientEmail, clientName, number string, balanceCents int64) error {
	return m.Called(ctx, clientEmail, clientName, number, balanceCents).Error(0)
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/repository/postgres"
)

// TxBeginner is the slice of *sql.DB the services need to open the commit
// transactions that serialize confirm/convert against concurrent writers.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type reservationService struct {
	db              TxBeginner
	reservationRepo repository.ReservationRepository
	documentRepo    repository.DocumentRepository
	vehicleRepo     repository.VehicleRepository
	clientRepo      repository.ClientRepository
	settingsSvc     SettingsService
	emailSvc        EmailService
}

func NewReservationService(
	db TxBeginner,
	reservationRepo repository.ReservationRepository,
	documentRepo repository.DocumentRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	settingsSvc SettingsService,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		db:              db,
		reservationRepo: reservationRepo,
		documentRepo:    documentRepo,
		vehicleRepo:     vehicleRepo,
		clientRepo:      clientRepo,
		settingsSvc:     settingsSvc,
		emailSvc:        emailSvc,
	}
}

// blockingWindows merges the occupied intervals of both tables that can block
// a vehicle: reservations and invoice documents.
func blockingWindows(ctx context.Context, resRepo repository.ReservationRepository, docRepo repository.DocumentRepository, vehicleID int32) ([]booking.BookingWindow, error) {
	windows, err := resRepo.ListBlockingWindows(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("listing reservation windows: %w", err)
	}
	docWindows, err := docRepo.ListBlockingWindows(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("listing document windows: %w", err)
	}
	return append(windows, docWindows...), nil
}

func (s *reservationService) CheckAvailability(ctx context.Context, vehicleID int32, start, end time.Time, exclude booking.WindowRef) (booking.AvailabilityResult, error) {
	requested, err := booking.NewInterval(start, end)
	if err != nil {
		return booking.AvailabilityResult{}, err
	}
	windows, err := blockingWindows(ctx, s.reservationRepo, s.documentRepo, vehicleID)
	if err != nil {
		return booking.AvailabilityResult{}, err
	}
	return booking.CheckAvailability(requested, windows, exclude)
}

func (s *reservationService) Quote(ctx context.Context, vehicleID int32, start, end time.Time, fees QuoteFees) (*booking.PricingResult, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	policy, err := s.settingsSvc.DepositPolicy(ctx)
	if err != nil {
		return nil, err
	}

	res, err := booking.ComputePricing(booking.PricingInput{
		DailyRateCents:   vehicle.DailyRateCents,
		Interval:         interval,
		DeliveryFeeCents: fees.DeliveryFeeCents,
		DriverFeeCents:   fees.DriverFeeCents,
		DiscountCents:    fees.DiscountCents,
		Deposit:          policy,
		AmountPaidCents:  fees.AmountPaidCents,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *reservationService) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	interval, err := booking.NewInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, ErrVehicleNotRentable
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Blocked {
		return nil, ErrClientBlocked
	}

	// Advisory pre-check for early feedback; confirm re-validates inside the
	// commit transaction.
	windows, err := blockingWindows(ctx, s.reservationRepo, s.documentRepo, req.VehicleID)
	if err != nil {
		return nil, err
	}
	avail, err := booking.CheckAvailability(interval, windows, booking.WindowRef{})
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, ErrVehicleConflict
	}

	policy, err := s.settingsSvc.DepositPolicy(ctx)
	if err != nil {
		return nil, err
	}
	pricing, err := booking.ComputePricing(booking.PricingInput{
		DailyRateCents:   vehicle.DailyRateCents,
		Interval:         interval,
		DeliveryFeeCents: req.Fees.DeliveryFeeCents,
		DriverFeeCents:   req.Fees.DriverFeeCents,
		DiscountCents:    req.Fees.DiscountCents,
		Deposit:          policy,
	})
	if err != nil {
		return nil, err
	}
	if pricing.OverDiscounted {
		logger.Warn("reservation total floored at zero by discount",
			"vehicle_id", req.VehicleID, "discount_cents", req.Fees.DiscountCents)
	}

	reservation := &domain.Reservation{
		VehicleID:        req.VehicleID,
		ClientID:         req.ClientID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DailyRateCents:   vehicle.DailyRateCents,
		DeliveryFeeCents: req.Fees.DeliveryFeeCents,
		DriverFeeCents:   req.Fees.DriverFeeCents,
		DiscountCents:    req.Fees.DiscountCents,
		DepositCents:     pricing.DepositCents,
		TotalCents:       pricing.TotalCents,
		BalanceDueCents:  pricing.TotalCents,
		Status:           domain.ReservationStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		Notes:            req.Notes,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Confirm re-validates availability inside the commit transaction: two
// callers can both see the slot free in the advisory check, but only the
// first to commit here wins.
func (s *reservationService) Confirm(ctx context.Context, id int32) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Fail fast before opening the transaction.
	if _, err := booking.NextReservationStatus(reservation.Status, booking.ReservationConfirm); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txResRepo := postgres.NewReservationRepositoryWithTx(tx)
	txDocRepo := postgres.NewDocumentRepositoryWithTx(tx)

	windows, err := blockingWindows(ctx, txResRepo, txDocRepo, reservation.VehicleID)
	if err != nil {
		return nil, err
	}
	interval := booking.Interval{Start: reservation.StartDate, End: reservation.EndDate}
	self := booking.WindowRef{Kind: domain.TargetKindReservation, ID: reservation.ID}

	next, err := booking.ConfirmReservation(reservation.Status, interval, windows, self)
	if err != nil {
		return nil, err
	}

	reservation.Status = next
	if err = txResRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, reservation)
	return reservation, nil
}

func (s *reservationService) notifyConfirmation(ctx context.Context, reservation *domain.Reservation) {
	client, err := s.clientRepo.GetByID(ctx, reservation.ClientID)
	if err != nil || client.Email == "" {
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, reservation.VehicleID)
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s %s (%s)", vehicle.Make, vehicle.Model, vehicle.Plate)
	if err := s.emailSvc.SendReservationConfirmation(ctx, client.Email, client.Name, name, reservation.StartDate, reservation.EndDate); err != nil {
		logger.Warn("failed to send confirmation email", "reservation_id", reservation.ID, "error", err)
	}
}

func (s *reservationService) Start(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.applyAction(ctx, id, booking.ReservationStart)
}

func (s *reservationService) Complete(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.applyAction(ctx, id, booking.ReservationComplete)
}

func (s *reservationService) Cancel(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.applyAction(ctx, id, booking.ReservationCancel)
}

func (s *reservationService) applyAction(ctx context.Context, id int32, action booking.ReservationAction) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := booking.NextReservationStatus(reservation.Status, action)
	if err != nil {
		return nil, err
	}
	reservation.Status = next
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) Get(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) List(ctx context.Context, vehicleID, clientID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.List(ctx, vehicleID, clientID, status, page, pageSize)
}

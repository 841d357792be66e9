package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	reservationRepo repository.ReservationRepository
	documentRepo    repository.DocumentRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	reservationRepo repository.ReservationRepository,
	documentRepo repository.DocumentRepository,
) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		documentRepo:    documentRepo,
	}
}

// Record appends a payment to the target's ledger and re-derives the stored
// payment status and balance from the full ledger. An overpayment is
// accepted and flagged, never rejected.
func (s *paymentService) Record(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, booking.ReconciliationResult, error) {
	if req.AmountCents <= 0 {
		return nil, booking.ReconciliationResult{}, ErrInvalidAmount
	}

	totalCents, err := s.targetTotal(ctx, req.TargetKind, req.TargetID)
	if err != nil {
		return nil, booking.ReconciliationResult{}, err
	}

	paidOn := req.PaidOn
	if paidOn.IsZero() {
		paidOn = time.Now()
	}
	payment := &domain.Payment{
		TargetKind:  req.TargetKind,
		TargetID:    req.TargetID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Reference:   req.Reference,
		PaidOn:      paidOn,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, booking.ReconciliationResult{}, err
	}

	payments, err := s.paymentRepo.ListByTarget(ctx, req.TargetKind, req.TargetID)
	if err != nil {
		return nil, booking.ReconciliationResult{}, err
	}
	rec := booking.Reconcile(totalCents, payments)
	if rec.Overpaid {
		logger.Warn("payment ledger exceeds booking total",
			"target_kind", req.TargetKind, "target_id", req.TargetID,
			"paid_cents", rec.AmountPaidCents, "total_cents", totalCents)
	}

	if err := s.applyReconciliation(ctx, req.TargetKind, req.TargetID, rec); err != nil {
		return nil, booking.ReconciliationResult{}, err
	}
	return payment, rec, nil
}

func (s *paymentService) ListByTarget(ctx context.Context, kind domain.TargetKind, targetID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByTarget(ctx, kind, targetID)
}

func (s *paymentService) Reconcile(ctx context.Context, kind domain.TargetKind, targetID int32) (booking.ReconciliationResult, error) {
	totalCents, err := s.targetTotal(ctx, kind, targetID)
	if err != nil {
		return booking.ReconciliationResult{}, err
	}
	payments, err := s.paymentRepo.ListByTarget(ctx, kind, targetID)
	if err != nil {
		return booking.ReconciliationResult{}, err
	}
	return booking.Reconcile(totalCents, payments), nil
}

func (s *paymentService) targetTotal(ctx context.Context, kind domain.TargetKind, targetID int32) (int64, error) {
	switch kind {
	case domain.TargetKindReservation:
		reservation, err := s.reservationRepo.GetByID(ctx, targetID)
		if err != nil {
			return 0, err
		}
		return reservation.TotalCents, nil
	default:
		doc, err := s.documentRepo.GetByID(ctx, targetID)
		if err != nil {
			return 0, err
		}
		return doc.TotalCents, nil
	}
}

func (s *paymentService) applyReconciliation(ctx context.Context, kind domain.TargetKind, targetID int32, rec booking.ReconciliationResult) error {
	switch kind {
	case domain.TargetKindReservation:
		reservation, err := s.reservationRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		reservation.PaymentStatus = rec.Status
		reservation.BalanceDueCents = rec.BalanceDueCents
		return s.reservationRepo.Update(ctx, reservation)
	default:
		doc, err := s.documentRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		doc.PaymentStatus = rec.Status
		doc.BalanceDueCents = rec.BalanceDueCents
		return s.documentRepo.Update(ctx, doc)
	}
}

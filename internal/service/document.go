package service

import (
	"context"
	"fmt"
	"strings"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/repository/postgres"

	"github.com/google/uuid"
)

type documentService struct {
	db           TxBeginner
	documentRepo repository.DocumentRepository
	vehicleRepo  repository.VehicleRepository
	clientRepo   repository.ClientRepository
	paymentRepo  repository.PaymentRepository
	settingsSvc  SettingsService
	emailSvc     EmailService
}

func NewDocumentService(
	db TxBeginner,
	documentRepo repository.DocumentRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	settingsSvc SettingsService,
	emailSvc EmailService,
) DocumentService {
	return &documentService{
		db:           db,
		documentRepo: documentRepo,
		vehicleRepo:  vehicleRepo,
		clientRepo:   clientRepo,
		paymentRepo:  paymentRepo,
		settingsSvc:  settingsSvc,
		emailSvc:     emailSvc,
	}
}

// documentNumber derives a short human-readable number like Q-7F3A21B0.
func documentNumber(kind domain.DocumentKind) string {
	prefix := "Q"
	if kind == domain.DocumentKindInvoice {
		prefix = "INV"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func (s *documentService) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*domain.Document, error) {
	interval, err := booking.NewInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Blocked {
		return nil, ErrClientBlocked
	}

	settings, err := s.settingsSvc.Get(ctx)
	if err != nil {
		return nil, err
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
		logger.Warn("quote total floored at zero by discount",
			"vehicle_id", req.VehicleID, "discount_cents", req.Fees.DiscountCents)
	}

	doc := &domain.Document{
		Kind:             domain.DocumentKindQuote,
		Number:           documentNumber(domain.DocumentKindQuote),
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
		VATCents:         vatFor(pricing.TotalCents, settings.VATPercent),
		BalanceDueCents:  pricing.TotalCents,
		Status:           domain.DocumentStatusQuote,
		PaymentStatus:    domain.PaymentStatusPending,
		Notes:            req.Notes,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// vatFor is display-only: the flat VAT share of a tax-inclusive total.
func vatFor(totalCents int64, vatPercent int) int64 {
	if vatPercent <= 0 {
		return 0
	}
	return (totalCents*int64(vatPercent) + 50) / 100
}

// ConvertToInvoice supersedes a quote with a freshly numbered invoice. The
// quote is marked converted (terminal) in the same transaction that creates
// the invoice, so the pair can never half-exist, and any payments recorded
// against the quote follow the invoice.
func (s *documentService) ConvertToInvoice(ctx context.Context, quoteID int32) (*domain.Document, error) {
	quote, err := s.documentRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Kind != domain.DocumentKindQuote {
		return nil, ErrNotAQuote
	}
	convertedStatus, err := booking.NextDocumentStatus(quote.Status, booking.DocumentConvert)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByTarget(ctx, domain.TargetKindDocument, quote.ID)
	if err != nil {
		return nil, err
	}
	rec := booking.Reconcile(quote.TotalCents, payments)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txDocRepo := postgres.NewDocumentRepositoryWithTx(tx)
	txPayRepo := postgres.NewPaymentRepositoryWithTx(tx)

	invoice := &domain.Document{
		Kind:             domain.DocumentKindInvoice,
		Number:           documentNumber(domain.DocumentKindInvoice),
		VehicleID:        quote.VehicleID,
		ClientID:         quote.ClientID,
		StartDate:        quote.StartDate,
		EndDate:          quote.EndDate,
		DailyRateCents:   quote.DailyRateCents,
		DeliveryFeeCents: quote.DeliveryFeeCents,
		DriverFeeCents:   quote.DriverFeeCents,
		DiscountCents:    quote.DiscountCents,
		DepositCents:     quote.DepositCents,
		TotalCents:       quote.TotalCents,
		VATCents:         quote.VATCents,
		BalanceDueCents:  rec.BalanceDueCents,
		Status:           domain.DocumentStatusInvoicePending,
		PaymentStatus:    rec.Status,
		ConvertedFromID:  &quote.ID,
		Notes:            quote.Notes,
	}
	if err = txDocRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	quote.Status = convertedStatus
	if err = txDocRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	if err = txPayRepo.Retarget(ctx, domain.TargetKindDocument, quote.ID, domain.TargetKindDocument, invoice.ID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	s.notifyInvoiceIssued(ctx, invoice)
	return invoice, nil
}

func (s *documentService) notifyInvoiceIssued(ctx context.Context, invoice *domain.Document) {
	client, err := s.clientRepo.GetByID(ctx, invoice.ClientID)
	if err != nil || client.Email == "" {
		return
	}
	if err := s.emailSvc.SendInvoiceIssued(ctx, client.Email, client.Name, invoice.Number, invoice.TotalCents); err != nil {
		logger.Warn("failed to send invoice email", "document_id", invoice.ID, "error", err)
	}
}

// Activate re-validates availability inside the commit transaction: an
// active invoice blocks the vehicle just like a confirmed reservation.
func (s *documentService) Activate(ctx context.Context, id int32) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := booking.NextDocumentStatus(doc.Status, booking.DocumentActivate); err != nil {
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

	windows, err := blockingWindows(ctx, txResRepo, txDocRepo, doc.VehicleID)
	if err != nil {
		return nil, err
	}
	interval := booking.Interval{Start: doc.StartDate, End: doc.EndDate}
	self := booking.WindowRef{Kind: domain.TargetKindDocument, ID: doc.ID}

	next, err := booking.ActivateInvoice(doc.Status, interval, windows, self)
	if err != nil {
		return nil, err
	}

	doc.Status = next
	if err = txDocRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Sign closes the invoice. The balance gate uses a fresh reconciliation of
// the full payment ledger, never the stored columns.
func (s *documentService) Sign(ctx context.Context, id int32, overridePartial bool) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByTarget(ctx, domain.TargetKindDocument, doc.ID)
	if err != nil {
		return nil, err
	}
	rec := booking.Reconcile(doc.TotalCents, payments)

	settings, err := s.settingsSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	allowPartial := settings.AllowPartialSignature || overridePartial

	next, err := booking.SignInvoice(doc.Status, rec, allowPartial)
	if err != nil {
		return nil, err
	}

	doc.Status = next
	doc.PaymentStatus = rec.Status
	doc.BalanceDueCents = rec.BalanceDueCents
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Cancel(ctx context.Context, id int32) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := booking.NextDocumentStatus(doc.Status, booking.DocumentCancel)
	if err != nil {
		return nil, err
	}
	doc.Status = next
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id int32) (*domain.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, kind, status string, clientID int32, page, pageSize int32) ([]domain.Document, int32, error) {
	return s.documentRepo.List(ctx, kind, status, clientID, page, pageSize)
}

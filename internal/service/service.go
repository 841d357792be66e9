package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
)

// QuoteFees carries the optional cost components of a pricing request.
type QuoteFees struct {
	DeliveryFeeCents int64
	DriverFeeCents   int64
	DiscountCents    int64
	AmountPaidCents  int64
}

type CreateReservationRequest struct {
	VehicleID int32
	ClientID  int32
	StartDate time.Time
	EndDate   time.Time
	Fees      QuoteFees
	Notes     string
}

type CreateQuoteRequest struct {
	VehicleID int32
	ClientID  int32
	StartDate time.Time
	EndDate   time.Time
	Fees      QuoteFees
	Notes     string
}

type RecordPaymentRequest struct {
	TargetKind  domain.TargetKind
	TargetID    int32
	AmountCents int64
	Method      domain.PaymentMethod
	Reference   string
	PaidOn      time.Time
}

type ReservationService interface {
	CheckAvailability(ctx context.Context, vehicleID int32, start, end time.Time, exclude booking.WindowRef) (booking.AvailabilityResult, error)
	Quote(ctx context.Context, vehicleID int32, start, end time.Time, fees QuoteFees) (*booking.PricingResult, error)
	Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error)
	Confirm(ctx context.Context, id int32) (*domain.Reservation, error)
	Start(ctx context.Context, id int32) (*domain.Reservation, error)
	Complete(ctx context.Context, id int32) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int32) (*domain.Reservation, error)
	Get(ctx context.Context, id int32) (*domain.Reservation, error)
	List(ctx context.Context, vehicleID, clientID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type DocumentService interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*domain.Document, error)
	// ConvertToInvoice supersedes the quote and returns the new invoice.
	ConvertToInvoice(ctx context.Context, quoteID int32) (*domain.Document, error)
	Activate(ctx context.Context, id int32) (*domain.Document, error)
	Sign(ctx context.Context, id int32, overridePartial bool) (*domain.Document, error)
	Cancel(ctx context.Context, id int32) (*domain.Document, error)
	Get(ctx context.Context, id int32) (*domain.Document, error)
	List(ctx context.Context, kind, status string, clientID int32, page, pageSize int32) ([]domain.Document, int32, error)
}

type PaymentService interface {
	Record(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, booking.ReconciliationResult, error)
	ListByTarget(ctx context.Context, kind domain.TargetKind, targetID int32) ([]domain.Payment, error)
	Reconcile(ctx context.Context, kind domain.TargetKind, targetID int32) (booking.ReconciliationResult, error)
}

type VehicleService interface {
	Add(ctx context.Context, v *domain.Vehicle) error
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ClientService interface {
	Add(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	List(ctx context.Context, search string, page, pageSize int32) ([]domain.Client, int32, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
	// DepositPolicy shapes the current settings for the pricing calculator.
	DepositPolicy(ctx context.Context) (booking.DepositPolicy, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, clientEmail, clientName, vehicleName string, start, end time.Time) error
	SendInvoiceIssued(ctx context.Context, clientEmail, clientName, number string, totalCents int64) error
	SendBalanceReminder(ctx context.Context, clientEmail, clientName, number string, balanceCents int64) error
}

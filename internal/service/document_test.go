package service_test

import (
	"context"
	"strings"
	"testing"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDocumentFixture(t *testing.T, db service.TxBeginner) (*MockDocumentRepo, *MockVehicleRepo, *MockClientRepo, *MockPaymentRepo, *MockSettingsRepo, *MockEmailService, service.DocumentService) {
	t.Helper()
	docRepo := new(MockDocumentRepo)
	vehicleRepo := new(MockVehicleRepo)
	clientRepo := new(MockClientRepo)
	paymentRepo := new(MockPaymentRepo)
	settingsRepo := new(MockSettingsRepo)
	emailSvc := new(MockEmailService)
	settingsSvc := service.NewSettingsService(settingsRepo, domain.Settings{})
	svc := service.NewDocumentService(db, docRepo, vehicleRepo, clientRepo, paymentRepo, settingsSvc, emailSvc)
	return docRepo, vehicleRepo, clientRepo, paymentRepo, settingsRepo, emailSvc, svc
}

func TestDocumentService_CreateQuote(t *testing.T) {
	ctx := context.Background()

	vehicle := &domain.Vehicle{ID: 7, DailyRateCents: 30000, Status: domain.VehicleStatusAvailable}
	client := &domain.Client{ID: 3, Name: "Jean Martin"}

	t.Run("Success", func(t *testing.T) {
		docRepo, vehicleRepo, clientRepo, _, settingsRepo, _, svc := newDocumentFixture(t, nil)

		vehicleRepo.On("GetByID", ctx, int32(7)).Return(vehicle, nil)
		clientRepo.On("GetByID", ctx, int32(3)).Return(client, nil)
		settingsRepo.On("Get", ctx).Return(testSettings(), nil)
		docRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Kind == domain.DocumentKindQuote &&
				d.Status == domain.DocumentStatusQuote &&
				d.TotalCents == 60000 &&
				d.VATCents == 12000 &&
				d.BalanceDueCents == 60000 &&
				strings.HasPrefix(d.Number, "Q-")
		})).Return(nil).Once()

		doc, err := svc.CreateQuote(ctx, service.CreateQuoteRequest{
			VehicleID: 7,
			ClientID:  3,
			StartDate: date(2024, 6, 10),
			EndDate:   date(2024, 6, 12),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentKindQuote, doc.Kind)
		docRepo.AssertExpectations(t)
	})

	t.Run("BlockedClient", func(t *testing.T) {
		_, vehicleRepo, clientRepo, _, _, _, svc := newDocumentFixture(t, nil)

		vehicleRepo.On("GetByID", ctx, int32(7)).Return(vehicle, nil)
		clientRepo.On("GetByID", ctx, int32(3)).Return(&domain.Client{ID: 3, Blocked: true}, nil)

		_, err := svc.CreateQuote(ctx, service.CreateQuoteRequest{
			VehicleID: 7,
			ClientID:  3,
			StartDate: date(2024, 6, 10),
			EndDate:   date(2024, 6, 12),
		})
		assert.ErrorIs(t, err, service.ErrClientBlocked)
	})
}

func TestDocumentService_ConvertToInvoice(t *testing.T) {
	ctx := context.Background()

	quote := func() *domain.Document {
		return &domain.Document{
			ID:             11,
			Kind:           domain.DocumentKindQuote,
			Number:         "Q-AAAA1111",
			VehicleID:      7,
			ClientID:       3,
			StartDate:      date(2024, 6, 10),
			EndDate:        date(2024, 6, 12),
			DailyRateCents: 30000,
			TotalCents:     60000,
			VATCents:       12000,
			Status:         domain.DocumentStatusQuote,
		}
	}

	t.Run("Success", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		docRepo, _, clientRepo, paymentRepo, _, _, svc := newDocumentFixture(t, db)

		docRepo.On("GetByID", ctx, int32(11)).Return(quote(), nil)
		// A 400 deposit was already taken against the quote.
		paymentRepo.On("ListByTarget", ctx, domain.TargetKindDocument, int32(11)).Return([]domain.Payment{
			{ID: 1, TargetKind: domain.TargetKindDocument, TargetID: 11, AmountCents: 40000},
		}, nil)
		clientRepo.On("GetByID", ctx, int32(3)).Return(&domain.Client{ID: 3, Name: "Jean Martin"}, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectQuery("INSERT INTO documents").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		dbMock.ExpectExec("UPDATE documents SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectExec("UPDATE payments SET target_kind").
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		invoice, err := svc.ConvertToInvoice(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentKindInvoice, invoice.Kind)
		assert.Equal(t, domain.DocumentStatusInvoicePending, invoice.Status)
		assert.True(t, strings.HasPrefix(invoice.Number, "INV-"))
		assert.Equal(t, int64(20000), invoice.BalanceDueCents)
		assert.Equal(t, domain.PaymentStatusPartial, invoice.PaymentStatus)
		if assert.NotNil(t, invoice.ConvertedFromID) {
			assert.Equal(t, int32(11), *invoice.ConvertedFromID)
		}
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("NotAQuote", func(t *testing.T) {
		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, nil)

		invoice := quote()
		invoice.Kind = domain.DocumentKindInvoice
		invoice.Status = domain.DocumentStatusInvoicePending
		docRepo.On("GetByID", ctx, int32(11)).Return(invoice, nil)

		_, err := svc.ConvertToInvoice(ctx, 11)
		assert.ErrorIs(t, err, service.ErrNotAQuote)
	})

	t.Run("AlreadyConverted", func(t *testing.T) {
		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, nil)

		converted := quote()
		converted.Status = domain.DocumentStatusConverted
		docRepo.On("GetByID", ctx, int32(11)).Return(converted, nil)

		_, err := svc.ConvertToInvoice(ctx, 11)
		var transitionErr *booking.IllegalTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestDocumentService_Sign(t *testing.T) {
	ctx := context.Background()

	activeInvoice := func() *domain.Document {
		return &domain.Document{
			ID:         12,
			Kind:       domain.DocumentKindInvoice,
			Number:     "INV-BBBB2222",
			TotalCents: 60000,
			Status:     domain.DocumentStatusInvoiceActive,
		}
	}

	t.Run("SettledBalance", func(t *testing.T) {
		docRepo, _, _, paymentRepo, settingsRepo, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(12)).Return(activeInvoice(), nil)
		paymentRepo.On("ListByTarget", ctx, domain.TargetKindDocument, int32(12)).Return([]domain.Payment{
			{AmountCents: 40000}, {AmountCents: 20000},
		}, nil)
		settingsRepo.On("Get", ctx).Return(testSettings(), nil)
		docRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Status == domain.DocumentStatusInvoiceSigned &&
				d.PaymentStatus == domain.PaymentStatusPaid &&
				d.BalanceDueCents == 0
		})).Return(nil).Once()

		doc, err := svc.Sign(ctx, 12, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusInvoiceSigned, doc.Status)
		docRepo.AssertExpectations(t)
	})

	t.Run("OutstandingBalanceRejected", func(t *testing.T) {
		docRepo, _, _, paymentRepo, settingsRepo, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(12)).Return(activeInvoice(), nil)
		paymentRepo.On("ListByTarget", ctx, domain.TargetKindDocument, int32(12)).Return([]domain.Payment{
			{AmountCents: 40000},
		}, nil)
		settingsRepo.On("Get", ctx).Return(testSettings(), nil)

		_, err := svc.Sign(ctx, 12, false)
		assert.ErrorIs(t, err, booking.ErrBalanceNotSettled)
	})

	t.Run("OutstandingBalanceOverridden", func(t *testing.T) {
		docRepo, _, _, paymentRepo, settingsRepo, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(12)).Return(activeInvoice(), nil)
		paymentRepo.On("ListByTarget", ctx, domain.TargetKindDocument, int32(12)).Return([]domain.Payment{
			{AmountCents: 40000},
		}, nil)
		settingsRepo.On("Get", ctx).Return(testSettings(), nil)
		docRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Status == domain.DocumentStatusInvoiceSigned &&
				d.PaymentStatus == domain.PaymentStatusPartial &&
				d.BalanceDueCents == 20000
		})).Return(nil).Once()

		doc, err := svc.Sign(ctx, 12, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPartial, doc.PaymentStatus)
	})
}

func TestDocumentService_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, db)

		docRepo.On("GetByID", ctx, int32(12)).Return(&domain.Document{
			ID:        12,
			Kind:      domain.DocumentKindInvoice,
			VehicleID: 7,
			StartDate: date(2024, 6, 10),
			EndDate:   date(2024, 6, 12),
			Status:    domain.DocumentStatusInvoicePending,
		}, nil)

		windowColumns := []string{"id", "start_date", "end_date", "status"}
		dbMock.ExpectBegin()
		dbMock.ExpectQuery("SELECT id, start_date, end_date, status FROM reservations").
			WillReturnRows(sqlmock.NewRows(windowColumns))
		dbMock.ExpectQuery("SELECT id, start_date, end_date, status FROM documents").
			WillReturnRows(sqlmock.NewRows(windowColumns))
		dbMock.ExpectExec("UPDATE documents SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		doc, err := svc.Activate(ctx, 12)
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusInvoiceActive, doc.Status)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("QuoteRejected", func(t *testing.T) {
		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(11)).Return(&domain.Document{
			ID:     11,
			Kind:   domain.DocumentKindQuote,
			Status: domain.DocumentStatusQuote,
		}, nil)

		_, err := svc.Activate(ctx, 11)
		var transitionErr *booking.IllegalTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestDocumentService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingInvoice", func(t *testing.T) {
		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(12)).Return(&domain.Document{
			ID:     12,
			Kind:   domain.DocumentKindInvoice,
			Status: domain.DocumentStatusInvoicePending,
		}, nil)
		docRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Status == domain.DocumentStatusCancelled
		})).Return(nil).Once()

		doc, err := svc.Cancel(ctx, 12)
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusCancelled, doc.Status)
	})

	t.Run("ConvertedQuoteRejected", func(t *testing.T) {
		docRepo, _, _, _, _, _, svc := newDocumentFixture(t, nil)

		docRepo.On("GetByID", ctx, int32(11)).Return(&domain.Document{
			ID:     11,
			Kind:   domain.DocumentKindQuote,
			Status: domain.DocumentStatusConverted,
		}, nil)

		_, err := svc.Cancel(ctx, 11)
		var transitionErr *booking.IllegalTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

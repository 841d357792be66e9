package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	currency  string
}

func NewEmailService(apiKey, fromEmail, fromName, currency string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		currency:  currency,
	}
}

func (s *emailService) send(_ context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) amount(cents int64) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, s.currency)
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, clientEmail, clientName, vehicleName string, start, end time.Time) error {
	subject := "Your reservation is confirmed"
	plainText := fmt.Sprintf("Hi %s, your reservation for %s from %s to %s is confirmed.",
		clientName, vehicleName, start.Format("2006-01-02"), end.Format("2006-01-02"))
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>Your reservation for <strong>%s</strong> from %s to %s is confirmed.</p>`,
		clientName, vehicleName, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return s.send(ctx, clientEmail, clientName, subject, plainText, htmlContent)
}

func (s *emailService) SendInvoiceIssued(ctx context.Context, clientEmail, clientName, number string, totalCents int64) error {
	subject := fmt.Sprintf("Invoice %s", number)
	plainText := fmt.Sprintf("Hi %s, invoice %s for %s has been issued.", clientName, number, s.amount(totalCents))
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>Invoice <strong>%s</strong> for %s has been issued.</p>`,
		clientName, number, s.amount(totalCents))
	return s.send(ctx, clientEmail, clientName, subject, plainText, htmlContent)
}

func (s *emailService) SendBalanceReminder(ctx context.Context, clientEmail, clientName, number string, balanceCents int64) error {
	subject := fmt.Sprintf("Payment reminder for %s", number)
	plainText := fmt.Sprintf("Hi %s, a balance of %s remains due on %s.", clientName, s.amount(balanceCents), number)
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>A balance of <strong>%s</strong> remains due on %s.</p>`,
		clientName, s.amount(balanceCents), number)
	return s.send(ctx, clientEmail, clientName, subject, plainText, htmlContent)
}

package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusInProgress ReservationStatus = "in_progress"
	ReservationStatusCompleted  ReservationStatus = "completed"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        int32     `json:"id"`
	VehicleID int32     `json:"vehicle_id"`
	ClientID  int32     `json:"client_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// Price snapshot fields — captured from the vehicle and agency settings at
	// creation time. All later recomputation uses these snapshots, not live rates.
	DailyRateCents   int64             `json:"daily_rate_cents"`
	DeliveryFeeCents int64             `json:"delivery_fee_cents"`
	DriverFeeCents   int64             `json:"driver_fee_cents"`
	DiscountCents    int64             `json:"discount_cents"`
	DepositCents     int64             `json:"deposit_cents"`
	TotalCents       int64             `json:"total_cents"`
	BalanceDueCents  int64             `json:"balance_due_cents"`
	Status           ReservationStatus `json:"status"`
	PaymentStatus    PaymentStatus     `json:"payment_status"`
	Notes            string            `json:"notes"`
	CreatedOn        time.Time         `json:"created_on"`
	UpdatedOn        time.Time         `json:"updated_on"`
}

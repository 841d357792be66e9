package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusRetired     VehicleStatus = "retired"
)

type Vehicle struct {
	ID             int32         `json:"id"`
	Plate          string        `json:"plate"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Category       string        `json:"category"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Status         VehicleStatus `json:"status"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}

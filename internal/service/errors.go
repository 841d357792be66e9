package service

import "errors"

var (
	// ErrVehicleNotRentable is returned when the vehicle is retired or in
	// maintenance.
	ErrVehicleNotRentable = errors.New("vehicle is not rentable")

	// ErrClientBlocked is returned when the client is blocked from booking.
	ErrClientBlocked = errors.New("client is blocked")

	// ErrVehicleConflict is returned at creation time when the requested
	// dates overlap an existing blocking booking.
	ErrVehicleConflict = errors.New("vehicle already booked for the requested dates")

	// ErrInvalidAmount is returned when a payment amount is zero or negative.
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrNotAQuote is returned when conversion is attempted on an invoice.
	ErrNotAQuote = errors.New("only a quote can be converted to an invoice")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Package http exposes the booking engine over a JSON REST API.
package http

import (
	"net/http"

	"fleetrent-backend/internal/security"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Reservations service.ReservationService
	Documents    service.DocumentService
	Payments     service.PaymentService
	Vehicles     service.VehicleService
	Clients      service.ClientService
	Settings     service.SettingsService
	Auth         service.AuthService
	Tokens       security.TokenManager
}

// NewRouter builds the full route table. Everything under /api/v1 except
// login requires a valid access token; settings changes require admin.
func NewRouter(s Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(s.Auth)
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(s.Tokens))

	reservations := NewReservationHandler(s.Reservations)
	protected.HandleFunc("/pricing/quote", reservations.Quote).Methods("POST")
	protected.HandleFunc("/vehicles/{id}/availability", reservations.Availability).Methods("GET")
	protected.HandleFunc("/reservations", reservations.Create).Methods("POST")
	protected.HandleFunc("/reservations", reservations.List).Methods("GET")
	protected.HandleFunc("/reservations/{id}", reservations.Get).Methods("GET")
	protected.HandleFunc("/reservations/{id}/confirm", reservations.Confirm).Methods("POST")
	protected.HandleFunc("/reservations/{id}/start", reservations.Start).Methods("POST")
	protected.HandleFunc("/reservations/{id}/complete", reservations.Complete).Methods("POST")
	protected.HandleFunc("/reservations/{id}/cancel", reservations.Cancel).Methods("POST")

	documents := NewDocumentHandler(s.Documents)
	protected.HandleFunc("/documents/quotes", documents.CreateQuote).Methods("POST")
	protected.HandleFunc("/documents", documents.List).Methods("GET")
	protected.HandleFunc("/documents/{id}", documents.Get).Methods("GET")
	protected.HandleFunc("/documents/{id}/convert", documents.Convert).Methods("POST")
	protected.HandleFunc("/documents/{id}/activate", documents.Activate).Methods("POST")
	protected.HandleFunc("/documents/{id}/sign", documents.Sign).Methods("POST")
	protected.HandleFunc("/documents/{id}/cancel", documents.Cancel).Methods("POST")

	payments := NewPaymentHandler(s.Payments)
	protected.HandleFunc("/payments", payments.Record).Methods("POST")
	protected.HandleFunc("/payments", payments.List).Methods("GET")
	protected.HandleFunc("/payments/reconciliation", payments.Reconciliation).Methods("GET")

	vehicles := NewVehicleHandler(s.Vehicles)
	protected.HandleFunc("/vehicles", vehicles.Create).Methods("POST")
	protected.HandleFunc("/vehicles", vehicles.List).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicles.Get).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicles.Update).Methods("PUT")
	protected.HandleFunc("/vehicles/{id}", vehicles.Delete).Methods("DELETE")

	clients := NewClientHandler(s.Clients)
	protected.HandleFunc("/clients", clients.Create).Methods("POST")
	protected.HandleFunc("/clients", clients.List).Methods("GET")
	protected.HandleFunc("/clients/{id}", clients.Get).Methods("GET")
	protected.HandleFunc("/clients/{id}", clients.Update).Methods("PUT")

	settingsHandler := NewSettingsHandler(s.Settings)
	protected.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	protected.Handle("/settings", RequireAdmin(http.HandlerFunc(settingsHandler.Update))).Methods("PUT")

	return router
}

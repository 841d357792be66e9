package http

import (
	"context"
	"net/http"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type feesPayload struct {
	DeliveryFeeCents int64 `json:"delivery_fee_cents"`
	DriverFeeCents   int64 `json:"driver_fee_cents"`
	DiscountCents    int64 `json:"discount_cents"`
	AmountPaidCents  int64 `json:"amount_paid_cents"`
}

func (f feesPayload) toQuoteFees() service.QuoteFees {
	return service.QuoteFees{
		DeliveryFeeCents: f.DeliveryFeeCents,
		DriverFeeCents:   f.DriverFeeCents,
		DiscountCents:    f.DiscountCents,
		AmountPaidCents:  f.AmountPaidCents,
	}
}

type createReservationPayload struct {
	VehicleID int32       `json:"vehicle_id"`
	ClientID  int32       `json:"client_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Fees      feesPayload `json:"fees"`
	Notes     string      `json:"notes"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createReservationPayload
	if err := decodeBody(r, &payload); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	start, err := parseDate(payload.StartDate)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	end, err := parseDate(payload.EndDate)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	reservation, err := h.reservations.Create(r.Context(), service.CreateReservationRequest{
		VehicleID: payload.VehicleID,
		ClientID:  payload.ClientID,
		StartDate: start,
		EndDate:   end,
		Fees:      payload.Fees.toQuoteFees(),
		Notes:     payload.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, reservation)
}

type quotePayload struct {
	VehicleID int32       `json:"vehicle_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Fees      feesPayload `json:"fees"`
}

// Quote prices an interval without persisting anything.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var payload quotePayload
	if err := decodeBody(r, &payload); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	start, err := parseDate(payload.StartDate)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	end, err := parseDate(payload.EndDate)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	result, err := h.reservations.Quote(r.Context(), payload.VehicleID, start, end, payload.Fees.toQuoteFees())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Availability answers whether a vehicle is free for the requested dates,
// optionally excluding one booking when editing its dates.
func (h *ReservationHandler) Availability(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	exclude := booking.WindowRef{}
	if kind := r.URL.Query().Get("exclude_kind"); kind != "" {
		exclude = booking.WindowRef{
			Kind: domain.TargetKind(kind),
			ID:   queryInt32(r, "exclude_id", 0),
		}
	}

	result, err := h.reservations.CheckAvailability(r.Context(), vehicleID, start, end, exclude)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	reservation, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	items, total, err := h.reservations.List(r.Context(),
		queryInt32(r, "vehicle_id", 0),
		queryInt32(r, "client_id", 0),
		r.URL.Query().Get("status"),
		page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.reservations.Confirm)
}

func (h *ReservationHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.reservations.Start)
}

func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.reservations.Complete)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.reservations.Cancel)
}

func (h *ReservationHandler) applyAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int32) (*domain.Reservation, error)) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	reservation, err := action(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservation)
}

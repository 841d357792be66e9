package http

import (
	"net/http"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type recordPaymentPayload struct {
	TargetKind  string `json:"target_kind"`
	TargetID    int32  `json:"target_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Reference   string `json:"reference"`
	PaidOn      string `json:"paid_on"`
}

type recordPaymentResponse struct {
	Payment        *domain.Payment              `json:"payment"`
	Reconciliation booking.ReconciliationResult `json:"reconciliation"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var payload recordPaymentPayload
	if err := decodeBody(r, &payload); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var paidOn time.Time
	if payload.PaidOn != "" {
		var err error
		paidOn, err = parseDate(payload.PaidOn)
		if err != nil {
			respondBadRequest(w, err.Error())
			return
		}
	}

	payment, rec, err := h.payments.Record(r.Context(), service.RecordPaymentRequest{
		TargetKind:  domain.TargetKind(payload.TargetKind),
		TargetID:    payload.TargetID,
		AmountCents: payload.AmountCents,
		Method:      domain.PaymentMethod(payload.Method),
		Reference:   payload.Reference,
		PaidOn:      paidOn,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, recordPaymentResponse{Payment: payment, Reconciliation: rec})
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.TargetKind(r.URL.Query().Get("target_kind"))
	targetID := queryInt32(r, "target_id", 0)
	if kind == "" || targetID == 0 {
		respondBadRequest(w, "target_kind and target_id are required")
		return
	}
	payments, err := h.payments.ListByTarget(r.Context(), kind, targetID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

// Reconciliation recomputes the ledger state for a booking on demand.
func (h *PaymentHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	kind := domain.TargetKind(r.URL.Query().Get("target_kind"))
	targetID := queryInt32(r, "target_id", 0)
	if kind == "" || targetID == 0 {
		respondBadRequest(w, "target_kind and target_id are required")
		return
	}
	rec, err := h.payments.Reconcile(r.Context(), kind, targetID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

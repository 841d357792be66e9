package http

import (
	"context"
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type DocumentHandler struct {
	documents service.DocumentService
}

func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

type createQuotePayload struct {
	VehicleID int32       `json:"vehicle_id"`
	ClientID  int32       `json:"client_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Fees      feesPayload `json:"fees"`
	Notes     string      `json:"notes"`
}

func (h *DocumentHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var payload createQuotePayload
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

	doc, err := h.documents.CreateQuote(r.Context(), service.CreateQuoteRequest{
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
	respondJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	invoice, err := h.documents.ConvertToInvoice(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, invoice)
}

func (h *DocumentHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.documents.Activate)
}

type signPayload struct {
	OverridePartial bool `json:"override_partial"`
}

func (h *DocumentHandler) Sign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	var payload signPayload
	if r.ContentLength > 0 {
		if err := decodeBody(r, &payload); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
	}
	doc, err := h.documents.Sign(r.Context(), id, payload.OverridePartial)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, h.documents.Cancel)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	doc, err := h.documents.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	items, total, err := h.documents.List(r.Context(),
		r.URL.Query().Get("kind"),
		r.URL.Query().Get("status"),
		queryInt32(r, "client_id", 0),
		page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *DocumentHandler) applyAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int32) (*domain.Document, error)) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	doc, err := action(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

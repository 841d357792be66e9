package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := decodeBody(r, &settings); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if settings.DepositPolicy != domain.DepositPolicyFixed && settings.DepositPolicy != domain.DepositPolicyPercent {
		respondBadRequest(w, "deposit_policy must be fixed or percent")
		return
	}
	if settings.DepositPercent < 0 || settings.DepositPercent > 100 {
		respondBadRequest(w, "deposit_percent must be between 0 and 100")
		return
	}
	if err := h.settings.Update(r.Context(), &settings); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

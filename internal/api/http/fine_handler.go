package http

import (
	"encoding/json"
	"net/http"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/service"
)

// FineHandler exposes the fine ledger endpoints
type FineHandler struct {
	fineSvc service.FineService
}

func NewFineHandler(fineSvc service.FineService) *FineHandler {
	return &FineHandler{fineSvc: fineSvc}
}

func (h *FineHandler) List(w http.ResponseWriter, r *http.Request) {
	fines, err := h.fineSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if fines == nil {
		fines = []domain.Fine{}
	}
	writeJSON(w, http.StatusOK, fines)
}

func (h *FineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateFineInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	if in.MemberID == 0 || in.Reason == "" || in.AmountCents == 0 || in.Date == "" {
		writeError(w, domain.Validationf("member_id, reason, amount_cents and date are required"))
		return
	}
	fine, err := h.fineSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Fine registered successfully", "fine": fine})
}

func (h *FineHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	fine, err := h.fineSvc.Settle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Fine settled successfully", "fine": fine})
}

package http

import (
	"encoding/json"
	"net/http"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/service"
)

// LoanHandler exposes the loan lifecycle endpoints
type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.ListOpen(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateLoanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	if in.BookID == 0 || in.MemberID == 0 || in.StartDate == "" || in.DueDate == "" {
		writeError(w, domain.Validationf("book_id, member_id, start_date and due_date are required"))
		return
	}
	loan, err := h.loanSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Loan registered successfully", "loan": loan})
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		ActualReturnDate string `json:"actual_return_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	if body.ActualReturnDate == "" {
		writeError(w, domain.Validationf("actual_return_date is required"))
		return
	}
	receipt, err := h.loanSvc.Return(r.Context(), id, body.ActualReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

package http

import (
	"encoding/json"
	"net/http"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/service"
)

// BookHandler exposes the book catalog endpoints
type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	book, err := h.bookSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	book, err := h.bookSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Book registered successfully", "book": book})
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in service.UpdateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	book, err := h.bookSvc.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.bookSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Book deleted successfully"})
}

package http

import (
	"biblioteca-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint of the admin-panel REST API.
func NewRouter(
	bookSvc service.BookService,
	memberSvc service.MemberService,
	loanSvc service.LoanService,
	fineSvc service.FineService,
) *mux.Router {
	books := NewBookHandler(bookSvc)
	members := NewMemberHandler(memberSvc)
	loans := NewLoanHandler(loanSvc)
	fines := NewFineHandler(fineSvc)

	router := mux.NewRouter()
	router.Use(RequestLogger)
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/libros", books.List).Methods("GET")
	api.HandleFunc("/libros", books.Create).Methods("POST")
	api.HandleFunc("/libros/{id}", books.Get).Methods("GET")
	api.HandleFunc("/libros/{id}", books.Update).Methods("PUT")
	api.HandleFunc("/libros/{id}", books.Delete).Methods("DELETE")

	api.HandleFunc("/socios", members.List).Methods("GET")
	api.HandleFunc("/socios", members.Register).Methods("POST")
	api.HandleFunc("/socios/{id}", members.Get).Methods("GET")
	api.HandleFunc("/socios/{id}", members.Update).Methods("PUT")
	api.HandleFunc("/socios/{id}", members.Delete).Methods("DELETE")

	api.HandleFunc("/prestamos", loans.List).Methods("GET")
	api.HandleFunc("/prestamos", loans.Create).Methods("POST")
	api.HandleFunc("/prestamos/activos", loans.ListOpen).Methods("GET")
	api.HandleFunc("/prestamos/{id}/devolver", loans.Return).Methods("PUT")

	api.HandleFunc("/multas", fines.List).Methods("GET")
	api.HandleFunc("/multas", fines.Create).Methods("POST")
	api.HandleFunc("/multas/{id}/cancelar", fines.Settle).Methods("PUT")

	return router
}

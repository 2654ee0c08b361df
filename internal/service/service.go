package service

import (
	"context"

	"biblioteca-backend/internal/domain"
)

// Inputs are strongly typed per use case; a nil pointer field means the caller
// did not supply the value.

type CreateBookInput struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	Quantity *int32 `json:"quantity,omitempty"` // defaults to 1
}

type UpdateBookInput struct {
	Title     *string `json:"title,omitempty"`
	Author    *string `json:"author,omitempty"`
	ISBN      *string `json:"isbn,omitempty"`
	Quantity  *int32  `json:"quantity,omitempty"`
	Available *int32  `json:"available,omitempty"`
	Loaned    *int32  `json:"loaned,omitempty"`
	Damaged   *int32  `json:"damaged,omitempty"`
}

type RegisterMemberInput struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type UpdateMemberInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type CreateLoanInput struct {
	BookID    int32  `json:"book_id"`
	MemberID  int32  `json:"member_id"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
}

type CreateFineInput struct {
	MemberID    int32  `json:"member_id"`
	Reason      string `json:"reason"`
	AmountCents int32  `json:"amount_cents"`
	Date        string `json:"date"`
	LoanID      *int32 `json:"loan_id,omitempty"`
}

// ReturnReceipt is the confirmation payload for a returned loan, including
// the human-readable fee text the original admin panel displays.
type ReturnReceipt struct {
	Loan       *domain.Loan `json:"loan"`
	Message    string       `json:"msg"`
	FineNotice string       `json:"fine_notice"`
}

type BookService interface {
	Create(ctx context.Context, in CreateBookInput) (*domain.Book, error)
	Get(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, id int32, in UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id int32) error
}

type MemberService interface {
	Register(ctx context.Context, in RegisterMemberInput) (*domain.Member, error)
	Get(ctx context.Context, id int32) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, id int32, in UpdateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id int32) error
}

type LoanService interface {
	Create(ctx context.Context, in CreateLoanInput) (*domain.Loan, error)
	Return(ctx context.Context, loanID int32, actualReturnDate string) (*ReturnReceipt, error)
	List(ctx context.Context) ([]domain.Loan, error)
	ListOpen(ctx context.Context) ([]domain.Loan, error)
}

type FineService interface {
	Create(ctx context.Context, in CreateFineInput) (*domain.Fine, error)
	Settle(ctx context.Context, fineID int32) (*domain.Fine, error)
	List(ctx context.Context) ([]domain.Fine, error)
}

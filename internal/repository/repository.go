package repository

import (
	"context"

	"biblioteca-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	// GetByIDForUpdate locks the book row for the remainder of the
	// transaction. Only meaningful inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Book, error)
	// GetByISBN returns (nil, nil) when no book carries the ISBN.
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Book, error)
}

type MemberRepository interface {
	// Create assigns the next sequential member number and fills in
	// ID and MemberNumber on the passed member.
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	// GetByNationalID and GetByEmail return (nil, nil) when absent.
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Member, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	// ListOverdue returns open loans whose due date is before asOf (yyyy-mm-dd).
	ListOverdue(ctx context.Context, asOf string) ([]domain.Loan, error)
	CountOpenByMember(ctx context.Context, memberID int32) (int32, error)
}

type FineRepository interface {
	Create(ctx context.Context, fine *domain.Fine) error
	GetByID(ctx context.Context, id int32) (*domain.Fine, error)
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Fine, error)
	Update(ctx context.Context, fine *domain.Fine) error
	List(ctx context.Context) ([]domain.Fine, error)
}

// Repositories bundles the stores a unit of work exposes. Inside WithinTx all
// of them run on the same database transaction.
type Repositories struct {
	Books   BookRepository
	Members MemberRepository
	Loans   LoanRepository
	Fines   FineRepository
}

// UnitOfWork executes a function atomically: every repository call made
// through the passed Repositories either commits as a whole or rolls back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(Repositories) error) error
}

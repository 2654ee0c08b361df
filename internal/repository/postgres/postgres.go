package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"biblioteca-backend/internal/repository"

	_ "github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx so every repository can
// run on the connection pool or inside a unit of work.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.MemberRepository
	repository.LoanRepository
	repository.FineRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		BookRepository:   NewBookRepository(db),
		MemberRepository: NewMemberRepository(db),
		LoanRepository:   NewLoanRepository(db),
		FineRepository:   NewFineRepository(db),
	}
}

// WithinTx runs fn with repositories bound to a single transaction. Any error
// from fn rolls the transaction back; no partial mutation is ever persisted.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Books:   &bookRepository{q: tx},
		Members: &memberRepository{q: tx},
		Loans:   &loanRepository{q: tx},
		Fines:   &fineRepository{q: tx},
	}
	if err := fn(repos); err != nil {
		return err
	}
	return tx.Commit()
}

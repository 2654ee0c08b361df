package service

import (
	"context"
	"fmt"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
	"biblioteca-backend/internal/utils"
)

type loanService struct {
	loanRepo repository.LoanRepository
	uow      repository.UnitOfWork
}

func NewLoanService(loanRepo repository.LoanRepository, uow repository.UnitOfWork) LoanService {
	return &loanService{loanRepo: loanRepo, uow: uow}
}

// Create opens a loan: it reserves one available copy of the book and
// persists the OPEN loan in the same transaction.
func (s *loanService) Create(ctx context.Context, in CreateLoanInput) (*domain.Loan, error) {
	if _, err := utils.LoanDays(in.StartDate, in.DueDate); err != nil {
		return nil, err
	}

	loan := &domain.Loan{
		BookID:    in.BookID,
		MemberID:  in.MemberID,
		StartDate: in.StartDate,
		DueDate:   in.DueDate,
		Status:    domain.LoanStatusOpen,
	}
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		book, err := r.Books.GetByIDForUpdate(ctx, in.BookID)
		if err != nil {
			return err
		}
		if _, err := r.Members.GetByID(ctx, in.MemberID); err != nil {
			return err
		}
		if err := book.Inventory.ReserveCopy(); err != nil {
			return err
		}
		if err := r.Books.Update(ctx, book); err != nil {
			return err
		}
		return r.Loans.Create(ctx, loan)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return closes a loan on the librarian's dedicated return action. The
// overdue fee is computed from the dates and stored on the loan itself; this
// path never creates a fine record (a librarian-created "late return" fine is
// the separate, non-reconciled route to closure).
func (s *loanService) Return(ctx context.Context, loanID int32, actualReturnDate string) (*ReturnReceipt, error) {
	if _, err := utils.ParseDate(actualReturnDate); err != nil {
		return nil, err
	}

	var receipt *ReturnReceipt
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		loan, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status == domain.LoanStatusClosed {
			return domain.Conflictf("this loan was already closed")
		}

		fee, lateDays, err := utils.LateFeeCents(loan.DueDate, actualReturnDate)
		if err != nil {
			return err
		}

		book, err := r.Books.GetByIDForUpdate(ctx, loan.BookID)
		if err != nil {
			return err
		}
		if err := book.Inventory.ReleaseCopy(); err != nil {
			return err
		}

		loan.Status = domain.LoanStatusClosed
		loan.ActualReturnDate = &actualReturnDate
		loan.FineAmountCents = fee

		if err := r.Books.Update(ctx, book); err != nil {
			return err
		}
		if err := r.Loans.Update(ctx, loan); err != nil {
			return err
		}

		notice := "No fine"
		if fee > 0 {
			notice = fmt.Sprintf("A fine of $%.2f was recorded for %d day(s) overdue", float64(fee)/100, lateDays)
		}
		receipt = &ReturnReceipt{
			Loan:       loan,
			Message:    "Book returned successfully",
			FineNotice: notice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *loanService) List(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.List(ctx)
}

func (s *loanService) ListOpen(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListByStatus(ctx, domain.LoanStatusOpen)
}

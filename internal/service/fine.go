package service

import (
	"context"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
	"biblioteca-backend/internal/utils"
)

type fineService struct {
	fineRepo repository.FineRepository
	uow      repository.UnitOfWork
}

func NewFineService(fineRepo repository.FineRepository, uow repository.UnitOfWork) FineService {
	return &fineService{fineRepo: fineRepo, uow: uow}
}

// Create registers a sanction. For the loan-tied reasons (late return,
// damaged book, lost book) it also closes the referenced open loan and moves
// the book's copy counters, all inside one transaction: the fine row, the
// loan transition and the inventory change commit or roll back together.
// The fine keeps the librarian-chosen amount; no date-based fee is computed
// on this path.
func (s *fineService) Create(ctx context.Context, in CreateFineInput) (*domain.Fine, error) {
	reason, err := domain.ParseFineReason(in.Reason)
	if err != nil {
		return nil, err
	}
	if in.AmountCents <= 0 {
		return nil, domain.Validationf("fine amount must be greater than zero")
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, err
	}
	if reason.RequiresLoan() && in.LoanID == nil {
		return nil, domain.Validationf("this fine reason requires an associated loan")
	}

	fine := &domain.Fine{
		MemberID:    in.MemberID,
		LoanID:      in.LoanID,
		Reason:      reason,
		AmountCents: in.AmountCents,
		Date:        in.Date,
		Status:      domain.FineStatusActive,
	}
	err = s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		if _, err := r.Members.GetByID(ctx, in.MemberID); err != nil {
			return err
		}

		// A loan reference on an OTHER fine is stored but has no side effect.
		if reason.RequiresLoan() {
			loan, err := r.Loans.GetByIDForUpdate(ctx, *in.LoanID)
			if err != nil {
				return err
			}
			if loan.Status == domain.LoanStatusClosed {
				return domain.Conflictf("this loan was already closed")
			}
			book, err := r.Books.GetByIDForUpdate(ctx, loan.BookID)
			if err != nil {
				return err
			}
			if book.Inventory.Loaned() <= 0 {
				return domain.Conflictf("the book has no borrowed copies")
			}

			switch reason {
			case domain.FineReasonLateReturn:
				err = book.Inventory.ReleaseCopy()
			case domain.FineReasonDamagedBook:
				err = book.Inventory.MarkDamaged()
			case domain.FineReasonLostBook:
				err = book.Inventory.MarkLost()
			}
			if err != nil {
				return err
			}

			loan.Status = domain.LoanStatusClosed
			date := in.Date
			loan.ActualReturnDate = &date

			if err := r.Books.Update(ctx, book); err != nil {
				return err
			}
			if err := r.Loans.Update(ctx, loan); err != nil {
				return err
			}
		}

		return r.Fines.Create(ctx, fine)
	})
	if err != nil {
		return nil, err
	}
	return fine, nil
}

// Settle marks a fine as paid. PAID is terminal.
func (s *fineService) Settle(ctx context.Context, fineID int32) (*domain.Fine, error) {
	var fine *domain.Fine
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		fine, err = r.Fines.GetByIDForUpdate(ctx, fineID)
		if err != nil {
			return err
		}
		if fine.Status == domain.FineStatusPaid {
			return domain.Conflictf("this fine was already paid")
		}
		fine.Status = domain.FineStatusPaid
		return r.Fines.Update(ctx, fine)
	})
	if err != nil {
		return nil, err
	}
	return fine, nil
}

func (s *fineService) List(ctx context.Context) ([]domain.Fine, error) {
	return s.fineRepo.List(ctx)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"biblioteca-backend/internal/domain"
)

func TestFineCreate(t *testing.T) {
	ctx := context.Background()
	loanID := int32(12)

	t.Run("Damaged book fine closes the loan and moves the copy to damaged", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(2, 1, 1, 0)}
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Update", ctx, loan).Return(nil)
		tr.fines.On("Create", ctx, mock.AnythingOfType("*domain.Fine")).Return(nil)

		fine, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "DAMAGED_BOOK",
			AmountCents: 1500,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.FineStatusActive, fine.Status)
		assert.Equal(t, int32(1500), fine.AmountCents)
		assert.Equal(t, domain.LoanStatusClosed, loan.Status)
		assert.Equal(t, "2024-03-20", *loan.ActualReturnDate)
		assert.Equal(t, int32(0), book.Inventory.Loaned())
		assert.Equal(t, int32(1), book.Inventory.Damaged())
		assert.Equal(t, int32(2), book.Inventory.Total())
		tr.assertExpectations(t)
	})

	t.Run("Lost book fine shrinks the total", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 0, 1, 0)}
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Update", ctx, loan).Return(nil)
		tr.fines.On("Create", ctx, mock.AnythingOfType("*domain.Fine")).Return(nil)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "LOST_BOOK",
			AmountCents: 4000,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.NoError(t, err)
		assert.Equal(t, int32(0), book.Inventory.Total())
		assert.Equal(t, int32(0), book.Inventory.Loaned())
		tr.assertExpectations(t)
	})

	t.Run("Late return fine keeps the librarian amount and releases the copy", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, DueDate: "2024-03-01", Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 0, 1, 0)}
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Update", ctx, loan).Return(nil)
		tr.fines.On("Create", ctx, mock.AnythingOfType("*domain.Fine")).Return(nil)

		// An amount unrelated to the 50 cents per day schedule is stored as is.
		fine, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "LATE_RETURN",
			AmountCents: 123,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.NoError(t, err)
		assert.Equal(t, int32(123), fine.AmountCents)
		assert.Equal(t, domain.LoanStatusClosed, loan.Status)
		assert.Equal(t, int32(1), book.Inventory.Available())
		tr.assertExpectations(t)
	})

	t.Run("Other fine ignores a loan reference", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.fines.On("Create", ctx, mock.AnythingOfType("*domain.Fine")).Return(nil)

		fine, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "OTHER",
			AmountCents: 200,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.NoError(t, err)
		assert.Equal(t, loanID, *fine.LoanID)
		tr.loans.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
		tr.assertExpectations(t)
	})

	t.Run("Loan-tied reason without a loan is rejected", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "DAMAGED_BOOK",
			AmountCents: 1500,
			Date:        "2024-03-20",
		})

		assert.EqualError(t, err, "this fine reason requires an associated loan")
		tr.members.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Closed loan is a conflict", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, Status: domain.LoanStatusClosed}
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "LOST_BOOK",
			AmountCents: 4000,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.EqualError(t, err, "this loan was already closed")
		tr.fines.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		tr.assertExpectations(t)
	})

	t.Run("Book without borrowed copies is a conflict", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(2, 2, 0, 0)}
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "LATE_RETURN",
			AmountCents: 500,
			Date:        "2024-03-20",
			LoanID:      &loanID,
		})

		assert.EqualError(t, err, "the book has no borrowed copies")
		tr.assertExpectations(t)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "OTHER",
			AmountCents: 0,
			Date:        "2024-03-20",
		})

		assert.EqualError(t, err, "fine amount must be greater than zero")
	})

	t.Run("Unknown reason is rejected", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		_, err := svc.Create(ctx, CreateFineInput{
			MemberID:    3,
			Reason:      "VANDALISM",
			AmountCents: 100,
			Date:        "2024-03-20",
		})

		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	})
}

func TestFineSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks an active fine as paid", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		fine := &domain.Fine{ID: 4, Status: domain.FineStatusActive}
		tr.fines.On("GetByIDForUpdate", ctx, int32(4)).Return(fine, nil)
		tr.fines.On("Update", ctx, fine).Return(nil)

		got, err := svc.Settle(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, domain.FineStatusPaid, got.Status)
		tr.assertExpectations(t)
	})

	t.Run("Paying twice is a conflict", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewFineService(tr.fines, tr.uow)

		fine := &domain.Fine{ID: 4, Status: domain.FineStatusPaid}
		tr.fines.On("GetByIDForUpdate", ctx, int32(4)).Return(fine, nil)

		_, err := svc.Settle(ctx, 4)

		assert.EqualError(t, err, "this fine was already paid")
		tr.fines.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		tr.assertExpectations(t)
	})
}

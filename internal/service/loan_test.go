package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"biblioteca-backend/internal/domain"
)

func TestLoanCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Reserves a copy and opens the loan", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		book := &domain.Book{ID: 7, Title: "El Aleph", Inventory: restoredInventory(2, 1, 0, 1)}
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Create", ctx, mock.AnythingOfType("*domain.Loan")).Return(nil)

		loan, err := svc.Create(ctx, CreateLoanInput{
			BookID:    7,
			MemberID:  3,
			StartDate: "2024-03-01",
			DueDate:   "2024-03-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.LoanStatusOpen, loan.Status)
		assert.Equal(t, int32(0), book.Inventory.Available())
		assert.Equal(t, int32(1), book.Inventory.Loaned())
		tr.assertExpectations(t)
	})

	t.Run("Fails when no copy is available", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 0, 1, 0)}
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.members.On("GetByID", ctx, int32(3)).Return(&domain.Member{ID: 3}, nil)

		_, err := svc.Create(ctx, CreateLoanInput{
			BookID:    7,
			MemberID:  3,
			StartDate: "2024-03-01",
			DueDate:   "2024-03-15",
		})

		assert.EqualError(t, err, "no copies available for this book")
		assert.Equal(t, domain.ErrorKindConflict, domain.KindOf(err))
		tr.loans.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		tr.assertExpectations(t)
	})

	t.Run("Fails when member does not exist", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 1, 0, 0)}
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.members.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundf("member 99 not found"))

		_, err := svc.Create(ctx, CreateLoanInput{
			BookID:    7,
			MemberID:  99,
			StartDate: "2024-03-01",
			DueDate:   "2024-03-15",
		})

		assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
		// Nothing mutated when the transaction fails
		assert.Equal(t, int32(1), book.Inventory.Available())
		tr.assertExpectations(t)
	})

	t.Run("Rejects an inverted loan period before touching the stores", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		_, err := svc.Create(ctx, CreateLoanInput{
			BookID:    7,
			MemberID:  3,
			StartDate: "2024-03-15",
			DueDate:   "2024-03-01",
		})

		assert.EqualError(t, err, "a loan must last at least 1 day")
		tr.books.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})
}

func TestLoanReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("On-time return releases the copy without a fee", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, DueDate: "2024-03-15", Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 0, 1, 0)}
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Update", ctx, loan).Return(nil)

		receipt, err := svc.Return(ctx, 12, "2024-03-10")

		assert.NoError(t, err)
		assert.Equal(t, domain.LoanStatusClosed, receipt.Loan.Status)
		assert.Equal(t, "2024-03-10", *receipt.Loan.ActualReturnDate)
		assert.Equal(t, int32(0), receipt.Loan.FineAmountCents)
		assert.Equal(t, "No fine", receipt.FineNotice)
		assert.Equal(t, int32(1), book.Inventory.Available())
		assert.Equal(t, int32(0), book.Inventory.Loaned())
		tr.assertExpectations(t)
	})

	t.Run("Late return records the capped daily fee on the loan", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, DueDate: "2024-03-10", Status: domain.LoanStatusOpen}
		book := &domain.Book{ID: 7, Inventory: restoredInventory(1, 0, 1, 0)}
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)
		tr.books.On("GetByIDForUpdate", ctx, int32(7)).Return(book, nil)
		tr.books.On("Update", ctx, book).Return(nil)
		tr.loans.On("Update", ctx, loan).Return(nil)

		receipt, err := svc.Return(ctx, 12, "2024-03-20")

		assert.NoError(t, err)
		assert.Equal(t, int32(500), receipt.Loan.FineAmountCents)
		assert.Equal(t, "A fine of $5.00 was recorded for 10 day(s) overdue", receipt.FineNotice)
		tr.assertExpectations(t)
	})

	t.Run("Closing twice is a conflict", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		loan := &domain.Loan{ID: 12, BookID: 7, DueDate: "2024-03-15", Status: domain.LoanStatusClosed}
		tr.loans.On("GetByIDForUpdate", ctx, int32(12)).Return(loan, nil)

		_, err := svc.Return(ctx, 12, "2024-03-20")

		assert.EqualError(t, err, "this loan was already closed")
		assert.Equal(t, domain.ErrorKindConflict, domain.KindOf(err))
		tr.books.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
		tr.assertExpectations(t)
	})

	t.Run("Rejects a malformed return date", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewLoanService(tr.loans, tr.uow)

		_, err := svc.Return(ctx, 12, "20/03/2024")

		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
		tr.loans.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})
}

func TestLoanListings(t *testing.T) {
	ctx := context.Background()
	tr := newTestRepos()
	svc := NewLoanService(tr.loans, tr.uow)

	all := []domain.Loan{{ID: 2}, {ID: 1}}
	open := []domain.Loan{{ID: 2, Status: domain.LoanStatusOpen}}
	tr.loans.On("List", ctx).Return(all, nil)
	tr.loans.On("ListByStatus", ctx, domain.LoanStatusOpen).Return(open, nil)

	got, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListOpen(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	tr.assertExpectations(t)
}

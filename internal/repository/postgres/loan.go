package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
)

type loanRepository struct {
	q querier
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{q: db}
}

const dateLayout = "2006-01-02"

const loanColumns = `id, book_id, member_id, start_date, due_date, actual_return_date, fine_amount_cents, status`

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (book_id, member_id, start_date, due_date, fine_amount_cents, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.q.QueryRowContext(ctx, query,
		l.BookID, l.MemberID, l.StartDate, l.DueDate, l.FineAmountCents, l.Status,
	).Scan(&l.ID)
}

func scanLoan(row interface{ Scan(dest ...any) error }) (*domain.Loan, error) {
	l := &domain.Loan{}
	var start, due time.Time
	var actual sql.NullTime
	if err := row.Scan(&l.ID, &l.BookID, &l.MemberID, &start, &due, &actual, &l.FineAmountCents, &l.Status); err != nil {
		return nil, err
	}
	l.StartDate = start.Format(dateLayout)
	l.DueDate = due.Format(dateLayout)
	if actual.Valid {
		d := actual.Time.Format(dateLayout)
		l.ActualReturnDate = &d
	}
	return l, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	l, err := scanLoan(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("loan %d not found", id)
	}
	return l, err
}

func (r *loanRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`
	l, err := scanLoan(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("loan %d not found", id)
	}
	return l, err
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET actual_return_date=$1, fine_amount_cents=$2, status=$3 WHERE id=$4`
	var actual any
	if l.ActualReturnDate != nil {
		actual = *l.ActualReturnDate
	}
	result, err := r.q.ExecContext(ctx, query, actual, l.FineAmountCents, l.Status, l.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("loan %d not found", l.ID)
	}
	return nil
}

const loanJoinedColumns = `l.id, l.book_id, l.member_id, l.start_date, l.due_date, l.actual_return_date, l.fine_amount_cents, l.status,
	       m.id, m.member_number, m.name, m.national_id, m.email, m.phone,
	       b.id, b.title, b.author, b.isbn, b.total_copies, b.available, b.loaned, b.damaged`

const loanJoins = ` FROM loans l
	        JOIN members m ON m.id = l.member_id
	        JOIN books b ON b.id = l.book_id`

func (r *loanRepository) queryJoined(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var start, due time.Time
		var actual sql.NullTime
		m := domain.Member{}
		b := domain.Book{}
		var total, available, loaned, damaged int32
		if err := rows.Scan(
			&l.ID, &l.BookID, &l.MemberID, &start, &due, &actual, &l.FineAmountCents, &l.Status,
			&m.ID, &m.MemberNumber, &m.Name, &m.NationalID, &m.Email, &m.Phone,
			&b.ID, &b.Title, &b.Author, &b.ISBN, &total, &available, &loaned, &damaged,
		); err != nil {
			return nil, err
		}
		l.StartDate = start.Format(dateLayout)
		l.DueDate = due.Format(dateLayout)
		if actual.Valid {
			d := actual.Time.Format(dateLayout)
			l.ActualReturnDate = &d
		}
		inv, err := domain.RestoreCopyInventory(total, available, loaned, damaged)
		if err != nil {
			return nil, err
		}
		b.Inventory = inv
		l.Member = &m
		l.Book = &b
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	query := `SELECT ` + loanJoinedColumns + loanJoins + ` ORDER BY l.id DESC`
	return r.queryJoined(ctx, query)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	query := `SELECT ` + loanJoinedColumns + loanJoins + ` WHERE l.status = $1 ORDER BY l.id DESC`
	return r.queryJoined(ctx, query, status)
}

func (r *loanRepository) ListOverdue(ctx context.Context, asOf string) ([]domain.Loan, error) {
	query := `SELECT ` + loanJoinedColumns + loanJoins + ` WHERE l.status = $1 AND l.due_date < $2 ORDER BY l.due_date ASC, l.id ASC`
	return r.queryJoined(ctx, query, domain.LoanStatusOpen, asOf)
}

func (r *loanRepository) CountOpenByMember(ctx context.Context, memberID int32) (int32, error) {
	query := `SELECT count(*) FROM loans WHERE member_id = $1 AND status = $2`
	var count int32
	err := r.q.QueryRowContext(ctx, query, memberID, domain.LoanStatusOpen).Scan(&count)
	return count, err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
)

type fineRepository struct {
	q querier
}

func NewFineRepository(db *sql.DB) repository.FineRepository {
	return &fineRepository{q: db}
}

const fineColumns = `id, member_id, loan_id, reason, amount_cents, fine_date, status`

func (r *fineRepository) Create(ctx context.Context, f *domain.Fine) error {
	query := `INSERT INTO fines (member_id, loan_id, reason, amount_cents, fine_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var loanID any
	if f.LoanID != nil {
		loanID = *f.LoanID
	}
	return r.q.QueryRowContext(ctx, query,
		f.MemberID, loanID, f.Reason, f.AmountCents, f.Date, f.Status,
	).Scan(&f.ID)
}

func scanFine(row interface{ Scan(dest ...any) error }) (*domain.Fine, error) {
	f := &domain.Fine{}
	var loanID sql.NullInt32
	var date time.Time
	if err := row.Scan(&f.ID, &f.MemberID, &loanID, &f.Reason, &f.AmountCents, &date, &f.Status); err != nil {
		return nil, err
	}
	if loanID.Valid {
		id := loanID.Int32
		f.LoanID = &id
	}
	f.Date = date.Format(dateLayout)
	return f, nil
}

func (r *fineRepository) GetByID(ctx context.Context, id int32) (*domain.Fine, error) {
	query := `SELECT ` + fineColumns + ` FROM fines WHERE id = $1`
	f, err := scanFine(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("fine %d not found", id)
	}
	return f, err
}

func (r *fineRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Fine, error) {
	query := `SELECT ` + fineColumns + ` FROM fines WHERE id = $1 FOR UPDATE`
	f, err := scanFine(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("fine %d not found", id)
	}
	return f, err
}

func (r *fineRepository) Update(ctx context.Context, f *domain.Fine) error {
	query := `UPDATE fines SET status=$1 WHERE id=$2`
	result, err := r.q.ExecContext(ctx, query, f.Status, f.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("fine %d not found", f.ID)
	}
	return nil
}

func (r *fineRepository) List(ctx context.Context) ([]domain.Fine, error) {
	query := `SELECT f.id, f.member_id, f.loan_id, f.reason, f.amount_cents, f.fine_date, f.status,
	                 m.id, m.member_number, m.name, m.national_id, m.email, m.phone
	          FROM fines f
	          JOIN members m ON m.id = f.member_id
	          ORDER BY f.fine_date DESC, f.id DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fines []domain.Fine
	for rows.Next() {
		var f domain.Fine
		var loanID sql.NullInt32
		var date time.Time
		m := domain.Member{}
		if err := rows.Scan(
			&f.ID, &f.MemberID, &loanID, &f.Reason, &f.AmountCents, &date, &f.Status,
			&m.ID, &m.MemberNumber, &m.Name, &m.NationalID, &m.Email, &m.Phone,
		); err != nil {
			return nil, err
		}
		if loanID.Valid {
			id := loanID.Int32
			f.LoanID = &id
		}
		f.Date = date.Format(dateLayout)
		f.Member = &m
		fines = append(fines, f)
	}
	return fines, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
)

type memberRepository struct {
	q querier
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{q: db}
}

const memberColumns = `id, member_number, name, national_id, email, phone`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	// The member number is the next unused sequential number, assigned in the
	// same statement so concurrent registrations cannot observe a stale max.
	query := `INSERT INTO members (member_number, name, national_id, email, phone)
	          VALUES ((SELECT COALESCE(MAX(member_number), 0) + 1 FROM members), $1, $2, $3, $4)
	          RETURNING id, member_number`
	return r.q.QueryRowContext(ctx, query, m.Name, m.NationalID, m.Email, m.Phone).
		Scan(&m.ID, &m.MemberNumber)
}

func scanMember(row interface{ Scan(dest ...any) error }) (*domain.Member, error) {
	m := &domain.Member{}
	if err := row.Scan(&m.ID, &m.MemberNumber, &m.Name, &m.NationalID, &m.Email, &m.Phone); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	m, err := scanMember(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("member %d not found", id)
	}
	return m, err
}

func (r *memberRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE national_id = $1`
	m, err := scanMember(r.q.QueryRowContext(ctx, query, nationalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	m, err := scanMember(r.q.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET name=$1, email=$2, phone=$3 WHERE id=$4`
	result, err := r.q.ExecContext(ctx, query, m.Name, m.Email, m.Phone, m.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("member %d not found", m.ID)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("member %d not found", id)
	}
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY id DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
)

type bookRepository struct {
	q querier
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{q: db}
}

const bookColumns = `id, title, author, isbn, total_copies, available, loaned, damaged`

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, isbn, total_copies, available, loaned, damaged)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	inv := b.Inventory
	return r.q.QueryRowContext(ctx, query,
		b.Title, b.Author, b.ISBN, inv.Total(), inv.Available(), inv.Loaned(), inv.Damaged(),
	).Scan(&b.ID)
}

func scanBook(row interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	b := &domain.Book{}
	var total, available, loaned, damaged int32
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &total, &available, &loaned, &damaged); err != nil {
		return nil, err
	}
	inv, err := domain.RestoreCopyInventory(total, available, loaned, damaged)
	if err != nil {
		return nil, err
	}
	b.Inventory = inv
	return b, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("book %d not found", id)
	}
	return b, err
}

func (r *bookRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`
	b, err := scanBook(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("book %d not found", id)
	}
	return b, err
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	b, err := scanBook(r.q.QueryRowContext(ctx, query, isbn))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author=$2, isbn=$3, total_copies=$4, available=$5, loaned=$6, damaged=$7 WHERE id=$8`
	inv := b.Inventory
	result, err := r.q.ExecContext(ctx, query,
		b.Title, b.Author, b.ISBN, inv.Total(), inv.Available(), inv.Loaned(), inv.Damaged(), b.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("book %d not found", b.ID)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("book %d not found", id)
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

package service

import (
	"context"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
	"biblioteca-backend/internal/validate"
)

type bookService struct {
	bookRepo repository.BookRepository
	uow      repository.UnitOfWork
}

func NewBookService(bookRepo repository.BookRepository, uow repository.UnitOfWork) BookService {
	return &bookService{bookRepo: bookRepo, uow: uow}
}

func (s *bookService) Create(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	title, err := validate.Title(in.Title)
	if err != nil {
		return nil, err
	}
	author, err := validate.Author(in.Author)
	if err != nil {
		return nil, err
	}
	isbn, err := validate.ISBN(in.ISBN)
	if err != nil {
		return nil, err
	}
	quantity := int32(1)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity, err = validate.Quantity(quantity); err != nil {
		return nil, err
	}
	inventory, err := domain.NewCopyInventory(quantity)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{Title: title, Author: author, ISBN: isbn, Inventory: inventory}
	err = s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		existing, err := r.Books.GetByISBN(ctx, isbn)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflictf("a book with this ISBN already exists")
		}
		return r.Books.Create(ctx, book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.List(ctx)
}

// Update applies an administrative edit. Changing the quantity shifts the
// available count by the same difference; per-category counters may also be
// set directly, then the whole inventory is revalidated.
func (s *bookService) Update(ctx context.Context, id int32, in UpdateBookInput) (*domain.Book, error) {
	var book *domain.Book
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		book, err = r.Books.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if in.Title != nil {
			if book.Title, err = validate.Title(*in.Title); err != nil {
				return err
			}
		}
		if in.Author != nil {
			if book.Author, err = validate.Author(*in.Author); err != nil {
				return err
			}
		}
		if in.ISBN != nil {
			isbn, err := validate.ISBN(*in.ISBN)
			if err != nil {
				return err
			}
			if isbn != book.ISBN {
				other, err := r.Books.GetByISBN(ctx, isbn)
				if err != nil {
					return err
				}
				if other != nil && other.ID != id {
					return domain.Conflictf("this ISBN is already in use by another book")
				}
			}
			book.ISBN = isbn
		}

		var quantity *int32
		if in.Quantity != nil {
			q, err := validate.Quantity(*in.Quantity)
			if err != nil {
				return err
			}
			quantity = &q
		}
		for _, c := range []struct {
			name  string
			value *int32
		}{
			{"available", in.Available},
			{"loaned", in.Loaned},
			{"damaged", in.Damaged},
		} {
			if c.value != nil {
				if _, err := validate.CopyCount(c.name, *c.value); err != nil {
					return err
				}
			}
		}
		if err := book.Inventory.Resize(quantity, in.Available, in.Loaned, in.Damaged); err != nil {
			return err
		}

		return r.Books.Update(ctx, book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id int32) error {
	return s.bookRepo.Delete(ctx, id)
}

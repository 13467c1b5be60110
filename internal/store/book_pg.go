package store

// Postgres source the in-memory catalog is seeded from.

import (
	"context"
	"errors"
	"fmt"

	"bookcatalog/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Catalog is the part of the catalog the loader writes to.
type Catalog interface {
	Add(b *book.Book) error
}

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// All returns every row of catalog_books in insertion order.
func (r *BookPG) All(ctx context.Context) ([]*book.Book, error) {
	const query = `
	SELECT isbn, title, author, year, genre, kind,
	       issue_number, issue_month, institution, readers
	FROM catalog_books
	ORDER BY created_at, isbn
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog_books: %w", err)
	}

	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, fmt.Errorf("scan catalog_books: %w", err)
	}
	return books, nil
}

func scanBook(row pgx.CollectableRow) (*book.Book, error) {
	var (
		isbn, title, author, genre, kind string
		year                             int
		number                           *int
		month, institution, readers      *string
	)
	if err := row.Scan(&isbn, &title, &author, &year, &genre, &kind, &number, &month, &institution, &readers); err != nil {
		return nil, err
	}

	switch book.Kind(kind) {
	case book.KindMagazine:
		return book.NewMagazine(isbn, title, author, year, deref(number), deref(month), genre), nil
	case book.KindTrainingMaterial:
		return book.NewTrainingMaterial(isbn, title, author, year, deref(institution), deref(readers), genre), nil
	default:
		return book.New(isbn, title, author, year, genre), nil
	}
}

// Load adds every stored book to c. Rows whose ISBN is already in the
// catalog are skipped. It returns the number of books added.
func (r *BookPG) Load(ctx context.Context, c Catalog) (int, error) {
	books, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, b := range books {
		if err := c.Add(b); err != nil {
			if errors.Is(err, book.ErrAlreadyExists) {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

// InsertMany bulk loads books into catalog_books with COPY.
func (r *BookPG) InsertMany(ctx context.Context, books []*book.Book) (int64, error) {
	columns := []string{"isbn", "title", "author", "year", "genre", "kind", "issue_number", "issue_month", "institution", "readers"}
	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"catalog_books"}, columns, pgx.CopyFromSlice(len(books), func(i int) ([]any, error) {
		return bookRow(books[i]), nil
	}))
	if err != nil {
		return n, fmt.Errorf("copy catalog_books: %w", err)
	}
	return n, nil
}

func bookRow(b *book.Book) []any {
	row := []any{b.ISBN, b.Title, b.Author, b.Year, b.Genre, string(b.Kind), nil, nil, nil, nil}
	switch {
	case b.Magazine != nil:
		row[6], row[7] = b.Magazine.Number, b.Magazine.Month
	case b.TrainingMaterial != nil:
		row[8], row[9] = b.TrainingMaterial.Institution, b.TrainingMaterial.Readers
	}
	return row
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

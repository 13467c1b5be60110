package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"

	"github.com/brianvoe/gofakeit/v6"
)

// Generate returns n fake books with ISBNs 978-00000001 onwards. Every tenth
// pair is a magazine followed by a training material.
func Generate(n int, seed *int64) []*book.Book {
	f := newFaker(seed)
	books := make([]*book.Book, 0, n)
	for i := 0; i < n; i++ {
		isbn := fmt.Sprintf("978-%08d", i+1)
		year := f.IntRange(1950, 2024)

		switch i % 10 {
		case 8:
			books = append(books, book.NewMagazine(isbn, f.BookTitle(), f.Company(), year, f.IntRange(1, 52), f.MonthString(), ""))
		case 9:
			books = append(books, book.NewTrainingMaterial(isbn, f.BookTitle(), f.BookAuthor(), year, f.Company(), f.JobTitle(), ""))
		default:
			books = append(books, book.New(isbn, f.BookTitle(), f.BookAuthor(), year, f.BookGenre()))
		}
	}
	return books
}

// Seed adds n generated books to c, skipping ISBNs the catalog already
// holds. It returns the number of books added.
func Seed(c *catalog.Catalog, n int, seed *int64) (int, error) {
	added := 0
	for i, b := range Generate(n, seed) {
		if err := c.Add(b); err != nil {
			if errors.Is(err, book.ErrAlreadyExists) {
				continue
			}
			return added, fmt.Errorf("seed book %d: %w", i+1, err)
		}
		added++
	}
	return added, nil
}

// newFaker returns a faker for seed, or a randomly seeded one when seed is
// nil. Zero is a valid seed.
func newFaker(seed *int64) *gofakeit.Faker {
	if seed == nil {
		return gofakeit.New(0)
	}
	return gofakeit.NewCustom(rand.New(rand.NewSource(*seed)))
}

package index

import (
	"cmp"
	"errors"
	"fmt"

	"bookcatalog/internal/book"
)

// ErrInconsistent is returned by Verify when the maps disagree.
var ErrInconsistent = errors.New("index inconsistent")

// Verify checks that every indexed book sits in the bucket matching its
// current author, year and genre and in no other bucket, and that no bucket
// is empty.
func (x *MultiIndex) Verify() error {
	for key, b := range x.byISBN {
		if b.ISBN != key {
			return fmt.Errorf("key %s holds book %s: %w", key, b.ISBN, ErrInconsistent)
		}
		if !x.byAuthor.has(b.Author, b) {
			return fmt.Errorf("%s missing from author bucket %q: %w", key, b.Author, ErrInconsistent)
		}
		if !x.byYear.has(b.Year, b) {
			return fmt.Errorf("%s missing from year bucket %d: %w", key, b.Year, ErrInconsistent)
		}
		if !x.byGenre.has(b.Genre, b) {
			return fmt.Errorf("%s missing from genre bucket %q: %w", key, b.Genre, ErrInconsistent)
		}
	}

	if err := verifyBuckets(x, book.AttrAuthor, x.byAuthor, func(b *book.Book) string { return b.Author }); err != nil {
		return err
	}
	if err := verifyBuckets(x, book.AttrYear, x.byYear, func(b *book.Book) int { return b.Year }); err != nil {
		return err
	}
	return verifyBuckets(x, book.AttrGenre, x.byGenre, func(b *book.Book) string { return b.Genre })
}

func verifyBuckets[K cmp.Ordered](x *MultiIndex, attr book.Attribute, m buckets[K], value func(*book.Book) K) error {
	total := 0
	for k, c := range m {
		if c.IsEmpty() {
			return fmt.Errorf("empty %s bucket %v: %w", attr, k, ErrInconsistent)
		}
		for b := range c.All() {
			if x.byISBN[b.ISBN] != b {
				return fmt.Errorf("%s bucket %v holds unindexed %s: %w", attr, k, b.ISBN, ErrInconsistent)
			}
			if value(b) != k {
				return fmt.Errorf("%s bucket %v holds %s with %s %v: %w", attr, k, b.ISBN, attr, value(b), ErrInconsistent)
			}
			total++
		}
	}
	if total != len(x.byISBN) {
		return fmt.Errorf("%s buckets hold %d entries for %d books: %w", attr, total, len(x.byISBN), ErrInconsistent)
	}
	return nil
}

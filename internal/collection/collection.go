// Package collection implements an insertion ordered list of books.
package collection

import (
	"fmt"
	"iter"
	"slices"

	"bookcatalog/internal/book"
)

// Collection is an ordered sequence of books. It does not reject duplicates;
// callers keep ISBNs unique. Not safe for concurrent use.
type Collection struct {
	books []*book.Book
}

// New returns a collection holding a copy of books.
func New(books ...*book.Book) *Collection {
	return &Collection{books: slices.Clone(books)}
}

func (c *Collection) Len() int {
	return len(c.books)
}

func (c *Collection) IsEmpty() bool {
	return len(c.books) == 0
}

// Add appends b.
func (c *Collection) Add(b *book.Book) error {
	if b == nil {
		return fmt.Errorf("add nil book: %w", book.ErrTypeMismatch)
	}
	c.books = append(c.books, b)
	return nil
}

// Remove deletes the first book equal to b.
func (c *Collection) Remove(b *book.Book) error {
	if b == nil {
		return fmt.Errorf("remove nil book: %w", book.ErrTypeMismatch)
	}
	i := c.indexOf(b)
	if i < 0 {
		return fmt.Errorf("remove %s from collection: %w", b.ISBN, book.ErrNotFound)
	}
	c.books = slices.Delete(c.books, i, i+1)
	return nil
}

// At returns the book at position i.
func (c *Collection) At(i int) (*book.Book, error) {
	if i < 0 || i >= len(c.books) {
		return nil, fmt.Errorf("position %d of %d: %w", i, len(c.books), book.ErrIndexOutOfRange)
	}
	return c.books[i], nil
}

// Set replaces the book at position i.
func (c *Collection) Set(i int, b *book.Book) error {
	if b == nil {
		return fmt.Errorf("set nil book: %w", book.ErrTypeMismatch)
	}
	if i < 0 || i >= len(c.books) {
		return fmt.Errorf("position %d of %d: %w", i, len(c.books), book.ErrIndexOutOfRange)
	}
	c.books[i] = b
	return nil
}

// Slice returns a new collection with the books in [lo, hi). Bounds are
// clamped to the collection, so Slice never fails.
func (c *Collection) Slice(lo, hi int) *Collection {
	lo = clamp(lo, len(c.books))
	hi = clamp(hi, len(c.books))
	if hi < lo {
		return New()
	}
	return New(c.books[lo:hi]...)
}

func (c *Collection) Contains(b *book.Book) bool {
	return b != nil && c.indexOf(b) >= 0
}

func (c *Collection) Clear() {
	c.books = nil
}

// All iterates over the books in insertion order.
func (c *Collection) All() iter.Seq[*book.Book] {
	return slices.Values(c.books)
}

// Books returns a copy of the underlying slice.
func (c *Collection) Books() []*book.Book {
	return slices.Clone(c.books)
}

func (c *Collection) String() string {
	return fmt.Sprintf("Collection%v", c.books)
}

func (c *Collection) indexOf(b *book.Book) int {
	return slices.IndexFunc(c.books, b.Equal)
}

// clamp counts negative positions from the end and bounds the result to [0, n].
func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

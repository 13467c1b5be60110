// Package catalog combines the insertion ordered list of books with the
// multi-key index and keeps the two in agreement.
package catalog

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"bookcatalog/internal/book"
	"bookcatalog/internal/collection"
	"bookcatalog/internal/index"
)

// Catalog is the entry point for adding, removing, updating and looking up
// books. The set of books in the ordered list always equals the set of ISBNs
// in the index. Each mutation runs under one write lock, so a Catalog may be
// shared between goroutines. Books go in and come out as copies; callers
// never hold a record the catalog mutates.
type Catalog struct {
	mu    sync.RWMutex
	books *collection.Collection
	index *index.MultiIndex
}

func New() *Catalog {
	return &Catalog{
		books: collection.New(),
		index: index.New(),
	}
}

// Add inserts a copy of b. A duplicate ISBN is rejected before anything is
// modified.
func (c *Catalog) Add(b *book.Book) error {
	if b == nil {
		return fmt.Errorf("add nil book: %w", book.ErrTypeMismatch)
	}
	b = b.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index.Has(b.ISBN) {
		return fmt.Errorf("add %s: %w", b.ISBN, book.ErrAlreadyExists)
	}
	if err := c.index.Add(b.ISBN, b); err != nil {
		return err
	}
	return c.books.Add(b)
}

// Remove deletes the book with the given ISBN.
func (c *Catalog) Remove(isbn string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.index.Get(isbn)
	if !ok {
		return fmt.Errorf("remove %s: %w", isbn, book.ErrNotFound)
	}
	if err := c.books.Remove(b); err != nil {
		return err
	}
	return c.index.Remove(isbn)
}

// Update patches the stored book with the given ISBN. The ordered list
// shares the same *book.Book, so only the index needs to move it.
func (c *Catalog) Update(isbn string, p book.Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.Update(isbn, p)
}

// FindByISBN returns the book with the given ISBN, or false when absent.
func (c *Catalog) FindByISBN(isbn string) (*book.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.index.Get(isbn)
	if !ok {
		return nil, false
	}
	return b.Clone(), true
}

func (c *Catalog) FindByAuthor(author string) []*book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.index.ByAuthor(author))
}

func (c *Catalog) FindByYear(year int) []*book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.index.ByYear(year))
}

func (c *Catalog) FindByGenre(genre string) []*book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.index.ByGenre(genre))
}

// FindByAttribute looks books up by author, year or genre. See
// index.MultiIndex.ByAttribute for the accepted value kinds.
func (c *Catalog) FindByAttribute(attr book.Attribute, value any) ([]*book.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	books, err := c.index.ByAttribute(attr, value)
	if err != nil {
		return nil, err
	}
	return cloneAll(books), nil
}

// Values lists the distinct values in use for attr.
func (c *Catalog) Values(attr book.Attribute) ([]any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.Values(attr)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.books.Len()
}

// Contains reports whether a book with b's ISBN is in the catalog.
func (c *Catalog) Contains(b *book.Book) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.books.Contains(b)
}

// Books returns the books in insertion order.
func (c *Catalog) Books() []*book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.books.Books())
}

// All iterates over a snapshot of the books in insertion order.
func (c *Catalog) All() iter.Seq[*book.Book] {
	return slices.Values(c.Books())
}

// cloneAll copies books in place. Callers pass slices they own.
func cloneAll(books []*book.Book) []*book.Book {
	for i, b := range books {
		books[i] = b.Clone()
	}
	return books
}

// Verify reports the first disagreement between the ordered list and
// the index, or nil.
func (c *Catalog) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.books.Len() != c.index.Len() {
		return fmt.Errorf("list holds %d books, index %d: %w", c.books.Len(), c.index.Len(), index.ErrInconsistent)
	}
	seen := make(map[string]bool, c.books.Len())
	for b := range c.books.All() {
		if seen[b.ISBN] {
			return fmt.Errorf("duplicate %s in list: %w", b.ISBN, index.ErrInconsistent)
		}
		seen[b.ISBN] = true
		if got, ok := c.index.Get(b.ISBN); !ok || got != b {
			return fmt.Errorf("%s listed but not indexed: %w", b.ISBN, index.ErrInconsistent)
		}
	}
	return c.index.Verify()
}

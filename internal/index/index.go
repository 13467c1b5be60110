// Package index keeps the primary ISBN map of the catalog and the secondary
// author, year and genre buckets in sync.
package index

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"bookcatalog/internal/book"
	"bookcatalog/internal/collection"
)

// MultiIndex maps ISBNs to books and groups books by author, year and genre.
// Every indexed book sits in exactly one bucket per attribute, the one
// matching its current value, and empty buckets are dropped. Not safe for
// concurrent use.
type MultiIndex struct {
	byISBN   map[string]*book.Book
	byAuthor buckets[string]
	byYear   buckets[int]
	byGenre  buckets[string]
}

func New() *MultiIndex {
	return &MultiIndex{
		byISBN:   make(map[string]*book.Book),
		byAuthor: make(buckets[string]),
		byYear:   make(buckets[int]),
		byGenre:  make(buckets[string]),
	}
}

func (x *MultiIndex) Len() int {
	return len(x.byISBN)
}

// Has reports whether key is indexed.
func (x *MultiIndex) Has(key string) bool {
	_, ok := x.byISBN[key]
	return ok
}

// Add indexes b under key.
func (x *MultiIndex) Add(key string, b *book.Book) error {
	if b == nil {
		return fmt.Errorf("index nil book: %w", book.ErrTypeMismatch)
	}
	if x.Has(key) {
		return fmt.Errorf("index %s: %w", key, book.ErrAlreadyExists)
	}

	if err := x.byAuthor.add(b.Author, b); err != nil {
		return err
	}
	if err := x.byYear.add(b.Year, b); err != nil {
		return err
	}
	if err := x.byGenre.add(b.Genre, b); err != nil {
		return err
	}
	x.byISBN[key] = b
	return nil
}

// Remove drops the book stored under key from every map.
func (x *MultiIndex) Remove(key string) error {
	b, ok := x.byISBN[key]
	if !ok {
		return fmt.Errorf("unindex %s: %w", key, book.ErrNotFound)
	}

	if err := x.byAuthor.remove(b.Author, b); err != nil {
		return err
	}
	if err := x.byYear.remove(b.Year, b); err != nil {
		return err
	}
	if err := x.byGenre.remove(b.Genre, b); err != nil {
		return err
	}
	delete(x.byISBN, key)
	return nil
}

// Update applies p to the book stored under key in place and moves it
// between buckets for every indexed attribute whose value changed.
func (x *MultiIndex) Update(key string, p book.Patch) error {
	b, ok := x.byISBN[key]
	if !ok {
		return fmt.Errorf("update %s: %w", key, book.ErrNotFound)
	}

	oldAuthor, oldYear, oldGenre := b.Author, b.Year, b.Genre
	p.Apply(b)

	if err := x.byAuthor.move(oldAuthor, b.Author, b); err != nil {
		return err
	}
	if err := x.byYear.move(oldYear, b.Year, b); err != nil {
		return err
	}
	return x.byGenre.move(oldGenre, b.Genre, b)
}

// Get returns the book stored under key.
func (x *MultiIndex) Get(key string) (*book.Book, bool) {
	b, ok := x.byISBN[key]
	return b, ok
}

func (x *MultiIndex) ByAuthor(author string) []*book.Book {
	return x.byAuthor.get(author)
}

func (x *MultiIndex) ByYear(year int) []*book.Book {
	return x.byYear.get(year)
}

func (x *MultiIndex) ByGenre(genre string) []*book.Book {
	return x.byGenre.get(genre)
}

// ByAttribute looks books up by a secondary attribute. value must be an int
// for AttrYear and a string otherwise. A value nobody has yields an empty
// result, not an error.
func (x *MultiIndex) ByAttribute(attr book.Attribute, value any) ([]*book.Book, error) {
	switch attr {
	case book.AttrAuthor, book.AttrGenre:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s wants a string, got %T: %w", attr, value, book.ErrTypeMismatch)
		}
		if attr == book.AttrAuthor {
			return x.ByAuthor(s), nil
		}
		return x.ByGenre(s), nil
	case book.AttrYear:
		y, ok := value.(int)
		if !ok {
			return nil, fmt.Errorf("%s wants an int, got %T: %w", attr, value, book.ErrTypeMismatch)
		}
		return x.ByYear(y), nil
	}
	return nil, fmt.Errorf("unknown attribute %q: %w", attr, book.ErrTypeMismatch)
}

// Keys returns the indexed ISBNs in sorted order.
func (x *MultiIndex) Keys() []string {
	return slices.Sorted(maps.Keys(x.byISBN))
}

// Values returns the sorted bucket keys in use for attr, formatted as
// strings for author and genre and as ints for year.
func (x *MultiIndex) Values(attr book.Attribute) ([]any, error) {
	switch attr {
	case book.AttrAuthor:
		return toAny(x.byAuthor.keys()), nil
	case book.AttrYear:
		return toAny(x.byYear.keys()), nil
	case book.AttrGenre:
		return toAny(x.byGenre.keys()), nil
	}
	return nil, fmt.Errorf("unknown attribute %q: %w", attr, book.ErrTypeMismatch)
}

// buckets groups books sharing one attribute value.
type buckets[K cmp.Ordered] map[K]*collection.Collection

func (m buckets[K]) add(k K, b *book.Book) error {
	c, ok := m[k]
	if !ok {
		c = collection.New()
	}
	if err := c.Add(b); err != nil {
		return fmt.Errorf("bucket %v: %w", k, err)
	}
	m[k] = c
	return nil
}

func (m buckets[K]) remove(k K, b *book.Book) error {
	c, ok := m[k]
	if !ok {
		return fmt.Errorf("bucket %v for %s: %w", k, b.ISBN, book.ErrNotFound)
	}
	if err := c.Remove(b); err != nil {
		return err
	}
	if c.IsEmpty() {
		delete(m, k)
	}
	return nil
}

func (m buckets[K]) move(from, to K, b *book.Book) error {
	if from == to {
		return nil
	}
	if err := m.remove(from, b); err != nil {
		return err
	}
	return m.add(to, b)
}

func (m buckets[K]) get(k K) []*book.Book {
	c, ok := m[k]
	if !ok {
		return []*book.Book{}
	}
	return c.Books()
}

func (m buckets[K]) keys() []K {
	return slices.Sorted(maps.Keys(m))
}

// has reports whether b sits in the bucket for k.
func (m buckets[K]) has(k K, b *book.Book) bool {
	c, ok := m[k]
	return ok && c.Contains(b)
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

package book

import (
	"fmt"
	"strings"
)

// Attribute names a secondary index of the catalog.
type Attribute string

const (
	AttrAuthor Attribute = "author"
	AttrYear   Attribute = "year"
	AttrGenre  Attribute = "genre"
)

// Attributes lists the indexed attributes in a stable order.
var Attributes = []Attribute{AttrAuthor, AttrYear, AttrGenre}

// ParseAttribute maps a user supplied attribute name to an Attribute.
// "creator" and "category" are accepted as aliases of author and genre.
func ParseAttribute(name string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "author", "creator":
		return AttrAuthor, nil
	case "year":
		return AttrYear, nil
	case "genre", "category":
		return AttrGenre, nil
	}
	return "", fmt.Errorf("unknown attribute %q: %w", name, ErrTypeMismatch)
}

// Patch describes a partial update. Nil fields are left unchanged; the ISBN
// is not part of a patch.
type Patch struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Genre  *string `json:"genre,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Year == nil && p.Genre == nil
}

// Apply writes the present fields of p into b.
func (p Patch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
}

// Ptr returns a pointer to v, handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}

package book

import (
	"fmt"
)

// Kind discriminates the catalog record variants.
type Kind string

const (
	KindGeneric          Kind = "BOOK"
	KindMagazine         Kind = "MAGAZINE"
	KindTrainingMaterial Kind = "TRAINING_MATERIAL"
)

// Default genres used when a variant is created without one.
const (
	MagazineGenre         = "Magazine"
	TrainingMaterialGenre = "Training material"
)

// Book represents one catalog entry. ISBN is the identity of the record and
// must not change once the book has been added to a catalog.
type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Kind   Kind   `json:"kind"`

	Magazine         *Magazine         `json:"magazine,omitempty"`
	TrainingMaterial *TrainingMaterial `json:"training_material,omitempty"`
}

// Magazine is the payload of a periodical issue.
type Magazine struct {
	Number int    `json:"number"`
	Month  string `json:"month"`
}

// TrainingMaterial is the payload of an instructional publication.
type TrainingMaterial struct {
	Institution string `json:"institution"`
	Readers     string `json:"readers"`
}

// New creates a generic book.
func New(isbn, title, author string, year int, genre string) *Book {
	return &Book{
		ISBN:   isbn,
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Kind:   KindGeneric,
	}
}

// NewMagazine creates a magazine issue. An empty genre falls back to MagazineGenre.
func NewMagazine(isbn, title, author string, year, number int, month, genre string) *Book {
	if genre == "" {
		genre = MagazineGenre
	}
	b := New(isbn, title, author, year, genre)
	b.Kind = KindMagazine
	b.Magazine = &Magazine{Number: number, Month: month}
	return b
}

// NewTrainingMaterial creates a training material. An empty genre falls back
// to TrainingMaterialGenre.
func NewTrainingMaterial(isbn, title, author string, year int, institution, readers, genre string) *Book {
	if genre == "" {
		genre = TrainingMaterialGenre
	}
	b := New(isbn, title, author, year, genre)
	b.Kind = KindTrainingMaterial
	b.TrainingMaterial = &TrainingMaterial{Institution: institution, Readers: readers}
	return b
}

// Equal reports whether b and other identify the same record.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.ISBN == other.ISBN
}

// Clone returns a deep copy of b, payloads included. A nil book clones to nil.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	c := *b
	if b.Magazine != nil {
		m := *b.Magazine
		c.Magazine = &m
	}
	if b.TrainingMaterial != nil {
		tm := *b.TrainingMaterial
		c.TrainingMaterial = &tm
	}
	return &c
}

// Info returns the variant specific description line.
func (b *Book) Info() string {
	switch {
	case b.Kind == KindMagazine && b.Magazine != nil:
		return fmt.Sprintf("Issue %d for %s %d", b.Magazine.Number, b.Magazine.Month, b.Year)
	case b.Kind == KindTrainingMaterial && b.TrainingMaterial != nil:
		return fmt.Sprintf("Training material %s: institution %s - %s", b.Title, b.TrainingMaterial.Institution, b.Author)
	default:
		return fmt.Sprintf("%s by %s (%d)", b.Title, b.Author, b.Year)
	}
}

func (b *Book) String() string {
	switch {
	case b.Kind == KindMagazine && b.Magazine != nil:
		return fmt.Sprintf("%s - Issue %d, %s %d", b.Title, b.Magazine.Number, b.Magazine.Month, b.Year)
	case b.Kind == KindTrainingMaterial && b.TrainingMaterial != nil:
		return fmt.Sprintf("Training material %s - %s, %d", b.Title, b.Author, b.Year)
	default:
		return fmt.Sprintf("Book: %s, %s, %d, %s, %s", b.Title, b.Author, b.Year, b.Genre, b.ISBN)
	}
}

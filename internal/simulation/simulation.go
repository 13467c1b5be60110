// Package simulation drives a catalog with randomly chosen operations.
package simulation

import (
	"fmt"
	"io"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"

	"github.com/brianvoe/gofakeit/v6"
)

type Event string

const (
	EventAdd          Event = "add"
	EventRemove       Event = "remove"
	EventSearchAuthor Event = "search_author"
	EventSearchYear   Event = "search_year"
	EventSearchGenre  Event = "search_genre"
	EventUpdate       Event = "update"
	EventGetNone      Event = "get_none"
)

// Events lists every event the simulator can pick.
var Events = []Event{
	EventAdd,
	EventRemove,
	EventSearchAuthor,
	EventSearchYear,
	EventSearchGenre,
	EventUpdate,
	EventGetNone,
}

const (
	DefaultSteps = 20
	MinYear      = 1800
	MaxYear      = 2025

	firstISBN   = 1001
	missingISBN = "978-0-00000"
)

var (
	titles = []string{
		"War and Peace", "Crime and Punishment", "The Master and Margarita",
		"Anna Karenina", "The Brothers Karamazov", "1984",
	}
	authors = []string{"Leo Tolstoy", "Fyodor Dostoevsky", "Mikhail Bulgakov", "George Orwell"}
	genres  = []string{"Novel", "Novella", "Science fiction", "Classics"}
)

// Report summarises a run.
type Report struct {
	Steps  int
	Events map[Event]int
	Books  int
}

// Simulator issues random operations against a catalog and narrates them
// to out.
type Simulator struct {
	catalog  *catalog.Catalog
	faker    *gofakeit.Faker
	out      io.Writer
	nextISBN int
}

// New returns a simulator. A nil seed picks a random one.
func New(c *catalog.Catalog, seed *int64, out io.Writer) *Simulator {
	return &Simulator{
		catalog:  c,
		faker:    newFaker(seed),
		out:      out,
		nextISBN: firstISBN,
	}
}

// Book generates a book with a fresh ISBN from the fixed title, author and
// genre pools.
func (s *Simulator) Book() *book.Book {
	isbn := fmt.Sprintf("978-5-%05d", s.nextISBN)
	s.nextISBN++
	return book.New(
		isbn,
		s.faker.RandomString(titles),
		s.faker.RandomString(authors),
		s.faker.IntRange(MinYear, MaxYear),
		s.faker.RandomString(genres),
	)
}

// Run performs steps random operations. Catalog errors abort the run since
// the simulator only issues operations that are valid for the current state.
func (s *Simulator) Run(steps int) (Report, error) {
	if steps <= 0 {
		steps = DefaultSteps
	}
	report := Report{Events: make(map[Event]int)}

	for step := 1; step <= steps; step++ {
		event := Events[s.faker.IntRange(0, len(Events)-1)]
		fmt.Fprintf(s.out, "[Step %d] %s\n", step, event)
		if err := s.apply(event); err != nil {
			return report, fmt.Errorf("step %d %s: %w", step, event, err)
		}
		report.Steps++
		report.Events[event]++
	}

	report.Books = s.catalog.Len()
	fmt.Fprintln(s.out, "Simulation finished.")
	fmt.Fprintf(s.out, "Books: %d\n", report.Books)
	for i, b := range s.catalog.Books() {
		if i == 3 {
			break
		}
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, b.Title)
	}
	return report, nil
}

func (s *Simulator) apply(event Event) error {
	switch event {
	case EventAdd:
		b := s.Book()
		if err := s.catalog.Add(b); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Added: '%s'\n", b.Title)

	case EventRemove:
		b, ok := s.pick()
		if !ok {
			fmt.Fprintln(s.out, "No books")
			return nil
		}
		if err := s.catalog.Remove(b.ISBN); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Removed: '%s'\n", b.Title)

	case EventSearchAuthor:
		author := s.faker.RandomString(authors)
		fmt.Fprintf(s.out, "'%s': %d books\n", author, len(s.catalog.FindByAuthor(author)))

	case EventSearchYear:
		year := s.faker.IntRange(MinYear, MaxYear)
		fmt.Fprintf(s.out, "Year %d: %d books\n", year, len(s.catalog.FindByYear(year)))

	case EventSearchGenre:
		genre := s.faker.RandomString(genres)
		fmt.Fprintf(s.out, "'%s': %d books\n", genre, len(s.catalog.FindByGenre(genre)))

	case EventUpdate:
		b, ok := s.pick()
		if !ok {
			fmt.Fprintln(s.out, "No books")
			return nil
		}
		year := s.faker.IntRange(MinYear, MaxYear)
		if err := s.catalog.Update(b.ISBN, book.Patch{Year: &year}); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Updated year of '%s': %d\n", b.Title, year)

	case EventGetNone:
		_, ok := s.catalog.FindByISBN(missingISBN)
		fmt.Fprintf(s.out, "Book not found: %t\n", !ok)

	default:
		return fmt.Errorf("unknown event %q", event)
	}
	return nil
}

func (s *Simulator) pick() (*book.Book, bool) {
	books := s.catalog.Books()
	if len(books) == 0 {
		return nil, false
	}
	return books[s.faker.IntRange(0, len(books)-1)], true
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/platform/openlibrary"
)

type Config struct {
	BooksMax  int
	Subjects  []string
	BatchSize int
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
	GetBooksByISBN(ctx context.Context, isbns []string) (map[string]openlibrary.BookDetails, error)
}

// Catalog is the part of the catalog the importer reads and writes.
type Catalog interface {
	Add(b *book.Book) error
	FindByISBN(isbn string) (*book.Book, bool)
	Len() int
}

type Service struct {
	olClient OpenLibraryClient
	catalog  Catalog
	cfg      Config
}

func NewService(olClient OpenLibraryClient, c Catalog, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	return &Service{
		olClient: olClient,
		catalog:  c,
		cfg:      cfg,
	}
}

// Run tops the catalog up to BooksMax with books found under the configured
// subjects. The subject becomes the genre of every book it yields.
func (s *Service) Run(ctx context.Context) (run *Run, err error) {
	run = &Run{
		Status:    StatusRunning,
		Subjects:  s.cfg.Subjects,
		StartedAt: time.Now(),
	}
	defer func() {
		run.FinishedAt = time.Now()
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
	}()

	needed := s.cfg.BooksMax - s.catalog.Len()
	if needed <= 0 {
		log.Println("Import target already met. Skipping.")
		return run, nil
	}

	processed := make(map[string]bool)
	for _, subject := range s.cfg.Subjects {
		if run.BooksAdded >= needed {
			break
		}

		searchRes, err := s.olClient.SearchBooks(ctx, subject, min(needed*2, 100))
		if err != nil {
			run.Error = fmt.Sprintf("search failed for %s: %v", subject, err)
			return run, err
		}

		var batch []string
		years := make(map[string]int)
		for _, doc := range searchRes.Docs {
			isbn := preferredISBN(doc.ISBN)
			if isbn == "" || processed[isbn] {
				continue
			}
			processed[isbn] = true
			if _, ok := s.catalog.FindByISBN(isbn); ok {
				run.BooksSkipped++
				continue
			}

			years[isbn] = doc.FirstPublishYear
			batch = append(batch, isbn)
			if len(batch) >= s.cfg.BatchSize {
				if err := s.hydrateBatch(ctx, run, subject, batch, years, needed); err != nil {
					return run, err
				}
				batch = nil
				if run.BooksAdded >= needed {
					break
				}
			}
		}
		if len(batch) > 0 && run.BooksAdded < needed {
			if err := s.hydrateBatch(ctx, run, subject, batch, years, needed); err != nil {
				return run, err
			}
		}
	}

	log.Printf("import finished: fetched=%d added=%d skipped=%d", run.BooksFetched, run.BooksAdded, run.BooksSkipped)
	return run, nil
}

func (s *Service) hydrateBatch(ctx context.Context, run *Run, subject string, isbns []string, years map[string]int, needed int) error {
	details, err := s.olClient.GetBooksByISBN(ctx, isbns)
	if err != nil {
		log.Printf("Failed to hydrate batch: %v", err)
		return nil
	}
	run.BooksFetched += len(details)

	// Keep the search order so imports are deterministic.
	for _, isbn := range isbns {
		if run.BooksAdded >= needed {
			return nil
		}
		d, ok := details["ISBN:"+isbn]
		if !ok {
			continue
		}

		year := parseYear(d.PublishDate)
		if year == 0 {
			year = years[isbn]
		}
		b := book.New(isbn, d.Title, firstAuthor(d), year, subject)

		if err := s.catalog.Add(b); err != nil {
			if errors.Is(err, book.ErrAlreadyExists) {
				run.BooksSkipped++
				continue
			}
			return fmt.Errorf("add %s: %w", isbn, err)
		}
		run.BooksAdded++
	}
	return nil
}

// preferredISBN picks the 13 digit form when Open Library returns both.
func preferredISBN(isbns []string) string {
	if len(isbns) == 0 {
		return ""
	}
	for _, i := range isbns {
		if len(i) == 13 {
			return i
		}
	}
	return isbns[0]
}

func firstAuthor(d openlibrary.BookDetails) string {
	names := make([]string, 0, len(d.Authors))
	for _, a := range d.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return names[0]
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// parseYear extracts the year from free-form dates such as "March 1999" or
// "1999-03-01".
func parseYear(date string) int {
	m := yearPattern.FindString(strings.TrimSpace(date))
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

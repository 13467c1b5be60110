// Package console implements the interactive line based front end of the
// catalog. It owns all parsing and formatting; the catalog only ever sees
// validated values.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/simulation"
)

const help = `Available commands:
1. Add a book (add)
2. Remove a book (remove)
3. Search by author (author)
4. Search by year (year)
5. Search by genre (genre)
6. Search by ISBN (isbn)
7. Update a book (update)
8. List all books (list)
9. Run a simulation (simulation)
To leave type: stop`

var errYear = errors.New("year must be a number")

type Console struct {
	catalog *catalog.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

func New(c *catalog.Catalog, in io.Reader, out io.Writer) *Console {
	return &Console{
		catalog: c,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run reads commands until the input ends or the user asks to stop.
func (c *Console) Run() error {
	c.println(help)

	for c.in.Scan() {
		cmd := strings.TrimSpace(c.in.Text())
		switch strings.ToLower(cmd) {
		case "stop", "stop!", "exit", "quit":
			return nil
		case "":
			c.println("Enter a command")
		case "help":
			c.println(help)
		case "add":
			c.add()
		case "remove":
			c.remove()
		case "author":
			c.searchAuthor()
		case "year":
			c.searchYear()
		case "genre":
			c.searchGenre()
		case "isbn":
			c.searchISBN()
		case "update":
			c.update()
		case "list":
			c.list()
		case "simulation":
			c.simulate()
		default:
			c.printf("Unknown command: '%s'. Enter one of the available commands.\n", cmd)
		}
	}
	return c.in.Err()
}

func (c *Console) add() {
	title := c.ask("Title: ")
	author := c.ask("Author: ")
	year, err := strconv.Atoi(c.ask("Year: "))
	if err != nil {
		c.fail("adding book", errYear)
		return
	}
	genre := c.ask("Genre: ")
	isbn := c.ask("ISBN: ")

	var b *book.Book
	switch strings.ToLower(c.ask("Kind (book, magazine, training) [book]: ")) {
	case "", "book":
		b = book.New(isbn, title, author, year, genre)
	case "magazine":
		number, err := strconv.Atoi(c.ask("Issue number: "))
		if err != nil {
			c.fail("adding book", errors.New("issue number must be a number"))
			return
		}
		b = book.NewMagazine(isbn, title, author, year, number, c.ask("Month: "), genre)
	case "training":
		b = book.NewTrainingMaterial(isbn, title, author, year, c.ask("Institution: "), c.ask("Readers: "), genre)
	default:
		c.fail("adding book", book.ErrTypeMismatch)
		return
	}

	if err := c.catalog.Add(b); err != nil {
		c.fail("adding book", err)
		return
	}
	c.printf("Book '%s' added\n", title)
}

func (c *Console) remove() {
	isbn := c.ask("ISBN of the book to remove: ")
	b, ok := c.catalog.FindByISBN(isbn)
	if !ok {
		c.printf("Book with ISBN '%s' not found\n", isbn)
		return
	}
	if err := c.catalog.Remove(isbn); err != nil {
		c.fail("removing book", err)
		return
	}
	c.printf("Book '%s' removed\n", b.Title)
}

func (c *Console) searchAuthor() {
	author := c.ask("Author: ")
	books := c.catalog.FindByAuthor(author)
	if len(books) == 0 {
		c.printf("No books by '%s'\n", author)
		return
	}
	c.printf("\nFound %d book(s) by '%s':\n", len(books), author)
	for i, b := range books {
		c.printf("  %d. %s (%d) - %s\n", i+1, b.Title, b.Year, b.Genre)
	}
}

func (c *Console) searchYear() {
	year, err := strconv.Atoi(c.ask("Year: "))
	if err != nil {
		c.printf("Error: %v\n", errYear)
		return
	}
	books := c.catalog.FindByYear(year)
	if len(books) == 0 {
		c.printf("No books from %d\n", year)
		return
	}
	c.printf("\nFound %d book(s) from %d:\n", len(books), year)
	for i, b := range books {
		c.printf("  %d. %s (%s) - %s\n", i+1, b.Title, b.Author, b.Genre)
	}
}

func (c *Console) searchGenre() {
	genre := c.ask("Genre: ")
	books := c.catalog.FindByGenre(genre)
	if len(books) == 0 {
		c.printf("No books in genre '%s'\n", genre)
		return
	}
	c.printf("\nFound %d book(s) in genre '%s':\n", len(books), genre)
	for i, b := range books {
		c.printf("  %d. %s - %s (%d)\n", i+1, b.Title, b.Author, b.Year)
	}
}

func (c *Console) searchISBN() {
	isbn := c.ask("ISBN: ")
	b, ok := c.catalog.FindByISBN(isbn)
	if !ok {
		c.printf("Book with ISBN '%s' not found\n", isbn)
		return
	}
	c.printf("Title: %s\nAuthor: %s\nYear: %d\nGenre: %s\nISBN: %s\n", b.Title, b.Author, b.Year, b.Genre, b.ISBN)
	if b.Kind != book.KindGeneric {
		c.println(b.Info())
	}
}

func (c *Console) update() {
	isbn := c.ask("ISBN of the book to update: ")
	b, ok := c.catalog.FindByISBN(isbn)
	if !ok {
		c.printf("Book with ISBN '%s' not found\n", isbn)
		return
	}

	c.printf("Current record: %s\n", b)
	c.println("\nEnter new values (leave empty to keep):")

	var p book.Patch
	if v := c.ask(fmt.Sprintf("Title [%s]: ", b.Title)); v != "" {
		p.Title = &v
	}
	if v := c.ask(fmt.Sprintf("Author [%s]: ", b.Author)); v != "" {
		p.Author = &v
	}
	if v := c.ask(fmt.Sprintf("Year [%d]: ", b.Year)); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.fail("updating book", errYear)
			return
		}
		p.Year = &year
	}
	if v := c.ask(fmt.Sprintf("Genre [%s]: ", b.Genre)); v != "" {
		p.Genre = &v
	}

	if p.IsEmpty() {
		c.println("Nothing changed")
		return
	}
	if err := c.catalog.Update(isbn, p); err != nil {
		c.fail("updating book", err)
		return
	}
	c.println("Book updated")
}

func (c *Console) list() {
	books := c.catalog.Books()
	if len(books) == 0 {
		c.println("The library is empty")
		return
	}
	c.printf("Total books: %d\n\n", len(books))
	for i, b := range books {
		c.printf("%d. %s - %s (%d)\n", i+1, b.Title, b.Author, b.Year)
	}
}

func (c *Console) simulate() {
	steps := simulation.DefaultSteps
	if v := c.ask(fmt.Sprintf("Number of steps (default %d): ", simulation.DefaultSteps)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.println("Error: invalid input")
			return
		}
		steps = n
	}
	var seed *int64
	if v := c.ask("Seed (empty for random): "); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.println("Error: invalid input")
			return
		}
		seed = &n
	}

	// Simulations run on a scratch catalog so they never touch user data.
	if _, err := simulation.New(catalog.New(), seed, c.out).Run(steps); err != nil {
		c.fail("running simulation", err)
	}
}

// ask prints prompt and returns the trimmed next line, or "" at end of input.
func (c *Console) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) fail(action string, err error) {
	c.printf("Error %s: %s\n", action, describe(err))
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func describe(err error) string {
	switch {
	case errors.Is(err, book.ErrAlreadyExists):
		return "a book with this ISBN already exists, use update to change it"
	case errors.Is(err, book.ErrNotFound):
		return "book not found"
	case errors.Is(err, book.ErrTypeMismatch):
		return "unsupported value"
	}
	return err.Error()
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks bookcatalog/internal/http BookStore

// BookStore is the catalog surface used by the handlers.
type BookStore interface {
	Add(b *book.Book) error
	Remove(isbn string) error
	Update(isbn string, p book.Patch) error
	FindByISBN(isbn string) (*book.Book, bool)
	FindByAttribute(attr book.Attribute, value any) ([]*book.Book, error)
	Values(attr book.Attribute) ([]any, error)
	Books() []*book.Book
}

type BookHandler struct {
	store BookStore
}

func NewBookHandler(store BookStore) *BookHandler {
	return &BookHandler{store: store}
}

type createBookRequest struct {
	ISBN             string                 `json:"isbn" validate:"required,max=32"`
	Title            string                 `json:"title" validate:"required,max=500"`
	Author           string                 `json:"author" validate:"required,max=200"`
	Year             *int                   `json:"year" validate:"required"`
	Genre            string                 `json:"genre" validate:"max=100"`
	Kind             book.Kind              `json:"kind" validate:"omitempty,oneof=BOOK MAGAZINE TRAINING_MATERIAL"`
	Magazine         *book.Magazine         `json:"magazine" validate:"required_if=Kind MAGAZINE"`
	TrainingMaterial *book.TrainingMaterial `json:"training_material" validate:"required_if=Kind TRAINING_MATERIAL"`
}

func (req createBookRequest) toBook() *book.Book {
	switch req.Kind {
	case book.KindMagazine:
		return book.NewMagazine(req.ISBN, req.Title, req.Author, *req.Year, req.Magazine.Number, req.Magazine.Month, req.Genre)
	case book.KindTrainingMaterial:
		return book.NewTrainingMaterial(req.ISBN, req.Title, req.Author, *req.Year, req.TrainingMaterial.Institution, req.TrainingMaterial.Readers, req.Genre)
	default:
		return book.New(req.ISBN, req.Title, req.Author, *req.Year, req.Genre)
	}
}

// @Summary List books
// @Description List catalog books in insertion order, optionally filtered by author, year and genre
// @Tags books
// @Produce json
// @Param author query string false "Filter by author"
// @Param year query int false "Filter by publication year"
// @Param genre query string false "Filter by genre"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filters []filter
	if v := query.Get("author"); v != "" {
		filters = append(filters, filter{book.AttrAuthor, v})
	}
	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters",
				[]httpx.ErrorDetail{{Field: "year", Message: "year must be an integer"}})
			return
		}
		filters = append(filters, filter{book.AttrYear, year})
	}
	if v := query.Get("genre"); v != "" {
		filters = append(filters, filter{book.AttrGenre, v})
	}

	books, err := h.find(filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	total := len(books)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	httpx.JSONSuccess(w, r, books[start:end], map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

type filter struct {
	attr  book.Attribute
	value any
}

// find resolves the first filter through the index and narrows the result
// by the remaining ones.
func (h *BookHandler) find(filters []filter) ([]*book.Book, error) {
	if len(filters) == 0 {
		return h.store.Books(), nil
	}
	books, err := h.store.FindByAttribute(filters[0].attr, filters[0].value)
	if err != nil {
		return nil, err
	}
	out := books[:0:0]
	for _, b := range books {
		if matches(b, filters[1:]) {
			out = append(out, b)
		}
	}
	return out, nil
}

func matches(b *book.Book, filters []filter) bool {
	for _, f := range filters {
		switch f.attr {
		case book.AttrAuthor:
			if b.Author != f.value {
				return false
			}
		case book.AttrYear:
			if b.Year != f.value {
				return false
			}
		case book.AttrGenre:
			if b.Genre != f.value {
				return false
			}
		}
	}
	return true
}

// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	b, ok := h.store.FindByISBN(isbn)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", details)
		return
	}

	b := req.toBook()
	if err := h.store.Add(b); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, b)
}

// @Summary Update a book
// @Description Patch title, author, year or genre. Unknown fields are ignored; the ISBN cannot change.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [patch]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	var p book.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	if err := h.store.Update(isbn, p); err != nil {
		h.writeError(w, r, err)
		return
	}

	b, ok := h.store.FindByISBN(isbn)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// @Summary Remove a book
// @Tags books
// @Security BearerAuth
// @Param isbn path string true "Book ISBN"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Remove(r.PathValue("isbn")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// @Summary List attribute values in use
// @Tags books
// @Produce json
// @Param attribute path string true "author, year or genre"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /attributes/{attribute} [get]
func (h *BookHandler) Values(w http.ResponseWriter, r *http.Request) {
	attr, err := book.ParseAttribute(r.PathValue("attribute"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	values, err := h.store.Values(attr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, values, map[string]any{"total": len(values)})
}

func (h *BookHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, book.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, book.ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "A book with this ISBN already exists", nil)
	case errors.Is(err, book.ErrTypeMismatch), errors.Is(err, book.ErrIndexOutOfRange):
		httpx.JSONError(w, r, http.StatusBadRequest, "TYPE_MISMATCH", err.Error(), nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func (h *BookHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		httpx.JSONError(w, r, http.StatusBadRequest, "TYPE_MISMATCH", "Invalid value type",
			[]httpx.ErrorDetail{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}})
		return
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid request body", nil)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/http/mocks"
	"bookcatalog/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var TestBook = testutil.TestBook

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestBookHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockBookStore(ctrl)
	router := NewRouter(mockStore, RouterConfig{})

	tests := []struct {
		name           string
		queryParams    string
		setupMock      func()
		expectedStatus int
		expectedTotal  float64
	}{
		{
			name:        "success - empty list",
			queryParams: "?page=1&page_size=20",
			setupMock: func() {
				mockStore.EXPECT().Books().Return([]*book.Book{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - with books",
			queryParams: "",
			setupMock: func() {
				mockStore.EXPECT().Books().Return([]*book.Book{TestBook})
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
		},
		{
			name:        "success - with genre filter",
			queryParams: "?genre=Fiction",
			setupMock: func() {
				mockStore.EXPECT().
					FindByAttribute(book.AttrGenre, "Fiction").
					Return([]*book.Book{TestBook}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
		},
		{
			name:        "success - author and year narrow the result",
			queryParams: "?author=Test+Author&year=1999",
			setupMock: func() {
				mockStore.EXPECT().
					FindByAttribute(book.AttrAuthor, "Test Author").
					Return([]*book.Book{TestBook}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  0,
		},
		{
			name:           "bad year",
			queryParams:    "?year=abc",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "server error",
			queryParams: "?genre=Fiction",
			setupMock: func() {
				mockStore.EXPECT().
					FindByAttribute(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(t, router, http.MethodGet, "/books"+tt.queryParams, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decode(t, w)
				meta := body["meta"].(map[string]any)
				assert.Equal(t, tt.expectedTotal, meta["total"])
			}
		})
	}
}

func TestBookHandler_GetByISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockBookStore(ctrl)
	router := NewRouter(mockStore, RouterConfig{})

	tests := []struct {
		name           string
		path           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success - book found",
			path: "/books/978-0-123456-78-9",
			setupMock: func() {
				mockStore.EXPECT().FindByISBN("978-0-123456-78-9").Return(TestBook, true)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - book not in catalog",
			path: "/books/999-9-999999-99-9",
			setupMock: func() {
				mockStore.EXPECT().FindByISBN("999-9-999999-99-9").Return(nil, false)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := serve(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockBookStore(ctrl)
	router := NewRouter(mockStore, RouterConfig{})

	tests := []struct {
		name           string
		body           string
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "created",
			body: `{"isbn":"1","title":"A","author":"X","year":1980,"genre":"Novel"}`,
			setupMock: func() {
				mockStore.EXPECT().Add(gomock.Any()).DoAndReturn(func(b *book.Book) error {
					assert.Equal(t, book.KindGeneric, b.Kind)
					assert.Equal(t, 1980, b.Year)
					return nil
				})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "magazine",
			body: `{"isbn":"m","title":"A","author":"X","year":1980,"kind":"MAGAZINE","magazine":{"number":3,"month":"May"}}`,
			setupMock: func() {
				mockStore.EXPECT().Add(gomock.Any()).DoAndReturn(func(b *book.Book) error {
					assert.Equal(t, book.MagazineGenre, b.Genre)
					assert.Equal(t, 3, b.Magazine.Number)
					return nil
				})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "magazine without payload",
			body:           `{"isbn":"m","title":"A","author":"X","year":1980,"kind":"MAGAZINE"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing fields",
			body:           `{"title":"A"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "year as string",
			body:           `{"isbn":"1","title":"A","author":"X","year":"1980"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "TYPE_MISMATCH",
		},
		{
			name:           "malformed json",
			body:           `{`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_JSON",
		},
		{
			name: "duplicate",
			body: `{"isbn":"1","title":"A","author":"X","year":1980}`,
			setupMock: func() {
				mockStore.EXPECT().Add(gomock.Any()).Return(book.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := serve(t, router, http.MethodPost, "/books", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				body := decode(t, w)
				errBody := body["error"].(map[string]any)
				assert.Equal(t, tt.expectedCode, errBody["code"])
			}
		})
	}
}

func TestBookHandler_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockBookStore(ctrl)
	router := NewRouter(mockStore, RouterConfig{})

	t.Run("update ignores unknown fields", func(t *testing.T) {
		mockStore.EXPECT().
			Update("1", book.Patch{Year: book.Ptr(2024)}).
			Return(nil)
		mockStore.EXPECT().FindByISBN("1").Return(TestBook, true)

		w := serve(t, router, http.MethodPatch, "/books/1", `{"year":2024,"isbn":"2","color":"red"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update missing", func(t *testing.T) {
		mockStore.EXPECT().Update("nope", gomock.Any()).Return(book.ErrNotFound)

		w := serve(t, router, http.MethodPatch, "/books/nope", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockStore.EXPECT().Remove("1").Return(nil)

		w := serve(t, router, http.MethodDelete, "/books/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		mockStore.EXPECT().Remove("nope").Return(book.ErrNotFound)

		w := serve(t, router, http.MethodDelete, "/books/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Values(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mocks.NewMockBookStore(ctrl)
	router := NewRouter(mockStore, RouterConfig{})

	mockStore.EXPECT().Values(book.AttrYear).Return([]any{1980, 1990}, nil)

	w := serve(t, router, http.MethodGet, "/attributes/year", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{float64(1980), float64(1990)}, body["data"])

	w = serve(t, router, http.MethodGet, "/attributes/isbn", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

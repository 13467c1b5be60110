package index

import (
	"errors"
	"testing"

	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTolstoy() (*book.Book, *book.Book) {
	return book.New("978-5-123-45678-0", "War and Peace", "Leo Tolstoy", 1869, "Novel"),
		book.New("978-5-234-56789-1", "Anna Karenina", "Leo Tolstoy", 1877, "Novel")
}

func TestMultiIndex_Add(t *testing.T) {
	x := New()
	b, _ := newTolstoy()

	require.NoError(t, x.Add(b.ISBN, b))

	got, ok := x.Get(b.ISBN)
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, []*book.Book{b}, x.ByAuthor("Leo Tolstoy"))
	assert.Equal(t, []*book.Book{b}, x.ByYear(1869))
	assert.Equal(t, []*book.Book{b}, x.ByGenre("Novel"))
	require.NoError(t, x.Verify())
}

func TestMultiIndex_AddDuplicate(t *testing.T) {
	x := New()
	b, _ := newTolstoy()
	require.NoError(t, x.Add(b.ISBN, b))

	dup := book.New(b.ISBN, "Other", "Other", 2000, "Other")
	err := x.Add(dup.ISBN, dup)
	assert.True(t, errors.Is(err, book.ErrAlreadyExists))

	assert.Equal(t, 1, x.Len())
	assert.Empty(t, x.ByAuthor("Other"))
	require.NoError(t, x.Verify())
}

func TestMultiIndex_AddNil(t *testing.T) {
	x := New()
	err := x.Add("k", nil)
	assert.True(t, errors.Is(err, book.ErrTypeMismatch))
	assert.Equal(t, 0, x.Len())
}

func TestMultiIndex_SameAuthorBucket(t *testing.T) {
	x := New()
	crime := book.New("978-5-234-56789-1", "Crime and Punishment", "Fyodor Dostoevsky", 1866, "Novel")
	karamazov := book.New("978-5-345-67890-2", "The Brothers Karamazov", "Fyodor Dostoevsky", 1880, "Novel")
	require.NoError(t, x.Add(crime.ISBN, crime))
	require.NoError(t, x.Add(karamazov.ISBN, karamazov))

	assert.Equal(t, []*book.Book{crime, karamazov}, x.ByAuthor("Fyodor Dostoevsky"))
}

func TestMultiIndex_Remove(t *testing.T) {
	x := New()
	war, anna := newTolstoy()
	require.NoError(t, x.Add(war.ISBN, war))
	require.NoError(t, x.Add(anna.ISBN, anna))

	require.NoError(t, x.Remove(war.ISBN))

	_, ok := x.Get(war.ISBN)
	assert.False(t, ok)
	assert.Equal(t, []*book.Book{anna}, x.ByAuthor("Leo Tolstoy"))
	assert.Empty(t, x.ByYear(1869))

	years, err := x.Values(book.AttrYear)
	require.NoError(t, err)
	assert.Equal(t, []any{1877}, years)
	require.NoError(t, x.Verify())

	err = x.Remove(war.ISBN)
	assert.True(t, errors.Is(err, book.ErrNotFound))
}

func TestMultiIndex_Update(t *testing.T) {
	t.Run("moves changed attributes", func(t *testing.T) {
		x := New()
		a := book.New("1", "A", "X", 1980, "Novel")
		b := book.New("2", "B", "X", 1990, "Novel")
		require.NoError(t, x.Add(a.ISBN, a))
		require.NoError(t, x.Add(b.ISBN, b))

		require.NoError(t, x.Update("1", book.Patch{Author: book.Ptr("Y")}))

		assert.Equal(t, []*book.Book{b}, x.ByAuthor("X"))
		assert.Equal(t, []*book.Book{a}, x.ByAuthor("Y"))
		assert.Equal(t, []*book.Book{a, b}, x.ByGenre("Novel"))
		require.NoError(t, x.Verify())
	})

	t.Run("prunes empty year bucket", func(t *testing.T) {
		x := New()
		a := book.New("1", "A", "X", 2020, "Novel")
		require.NoError(t, x.Add(a.ISBN, a))

		require.NoError(t, x.Update("1", book.Patch{Year: book.Ptr(2024)}))

		got, _ := x.Get("1")
		assert.Equal(t, 2024, got.Year)
		assert.Equal(t, []*book.Book{a}, x.ByYear(2024))
		assert.Empty(t, x.ByYear(2020))
		years, _ := x.Values(book.AttrYear)
		assert.Equal(t, []any{2024}, years)
		require.NoError(t, x.Verify())
	})

	t.Run("title only keeps buckets", func(t *testing.T) {
		x := New()
		a := book.New("1", "A", "X", 2020, "Novel")
		require.NoError(t, x.Add(a.ISBN, a))

		require.NoError(t, x.Update("1", book.Patch{Title: book.Ptr("B"), Genre: book.Ptr("Novel")}))

		assert.Equal(t, "B", a.Title)
		assert.Equal(t, []*book.Book{a}, x.ByGenre("Novel"))
		require.NoError(t, x.Verify())
	})

	t.Run("missing key", func(t *testing.T) {
		x := New()
		err := x.Update("nope", book.Patch{Year: book.Ptr(1)})
		assert.True(t, errors.Is(err, book.ErrNotFound))
	})
}

func TestMultiIndex_EmptyLookups(t *testing.T) {
	x := New()

	b, ok := x.Get("anything")
	assert.Nil(t, b)
	assert.False(t, ok)

	got, err := x.ByAttribute(book.AttrYear, 1999)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMultiIndex_ByAttribute(t *testing.T) {
	x := New()
	war, anna := newTolstoy()
	require.NoError(t, x.Add(war.ISBN, war))
	require.NoError(t, x.Add(anna.ISBN, anna))

	tests := []struct {
		name    string
		attr    book.Attribute
		value   any
		want    int
		wantErr error
	}{
		{"author", book.AttrAuthor, "Leo Tolstoy", 2, nil},
		{"year", book.AttrYear, 1877, 1, nil},
		{"genre", book.AttrGenre, "Novel", 2, nil},
		{"unknown genre", book.AttrGenre, "Poetry", 0, nil},
		{"year as string", book.AttrYear, "1877", 0, book.ErrTypeMismatch},
		{"author as int", book.AttrAuthor, 7, 0, book.ErrTypeMismatch},
		{"unknown attribute", book.Attribute("isbn"), "x", 0, book.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.ByAttribute(tt.attr, tt.value)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMultiIndex_KeysAndValues(t *testing.T) {
	x := New()
	war, anna := newTolstoy()
	require.NoError(t, x.Add(anna.ISBN, anna))
	require.NoError(t, x.Add(war.ISBN, war))

	assert.Equal(t, []string{war.ISBN, anna.ISBN}, x.Keys())

	authors, err := x.Values(book.AttrAuthor)
	require.NoError(t, err)
	assert.Equal(t, []any{"Leo Tolstoy"}, authors)

	_, err = x.Values(book.Attribute("title"))
	assert.True(t, errors.Is(err, book.ErrTypeMismatch))
}

func TestMultiIndex_VerifyDetectsDrift(t *testing.T) {
	x := New()
	b := book.New("1", "A", "X", 2000, "G")
	require.NoError(t, x.Add(b.ISBN, b))

	// Mutating behind the index's back leaves the book in a stale bucket.
	b.Author = "Z"
	err := x.Verify()
	assert.True(t, errors.Is(err, ErrInconsistent))
}

func TestBuckets_AddRejectsNil(t *testing.T) {
	m := buckets[string]{}

	err := m.add("Leo Tolstoy", nil)
	assert.True(t, errors.Is(err, book.ErrTypeMismatch))
	assert.Empty(t, m)

	b, _ := newTolstoy()
	require.NoError(t, m.add("Leo Tolstoy", b))
	err = m.move("Leo Tolstoy", "Tolstoy", nil)
	assert.True(t, errors.Is(err, book.ErrTypeMismatch))
	assert.Equal(t, []*book.Book{b}, m.get("Leo Tolstoy"))
	assert.Empty(t, m.get("Tolstoy"))
}

// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/shelf/internal/models"
)

// MockCatalog is an in-memory test double for [models.Catalog] with the same error contract as the SQLite repository.
type MockCatalog struct {
	Books map[int64]models.Book
	Err   error // returned by every call when set
	Calls []string
}

var _ models.Catalog = (*MockCatalog)(nil)

func NewMockCatalog(books ...models.Book) *MockCatalog {
	m := &MockCatalog{Books: make(map[int64]models.Book)}
	for _, b := range books {
		m.Books[b.ISBN()] = b
	}
	return m
}

func (m *MockCatalog) Search(isbn int64) (models.Book, error) {
	m.Calls = append(m.Calls, "search")
	if m.Err != nil {
		return models.Book{}, m.Err
	}
	b, ok := m.Books[isbn]
	if !ok {
		return models.Book{}, &models.BookNotFoundError{ISBN: isbn}
	}
	return b, nil
}

func (m *MockCatalog) Add(book models.Book) error {
	m.Calls = append(m.Calls, "add")
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Books[book.ISBN()]; ok {
		return &models.BookAlreadyExistsError{ISBN: book.ISBN()}
	}
	m.Books[book.ISBN()] = book
	return nil
}

func (m *MockCatalog) Edit(book models.Book) error {
	m.Calls = append(m.Calls, "edit")
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Books[book.ISBN()]; !ok {
		return &models.BookNotFoundError{ISBN: book.ISBN()}
	}
	m.Books[book.ISBN()] = book
	return nil
}

func (m *MockCatalog) Delete(isbn int64) error {
	m.Calls = append(m.Calls, "delete")
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Books[isbn]; !ok {
		return &models.BookNotFoundError{ISBN: isbn}
	}
	delete(m.Books, isbn)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

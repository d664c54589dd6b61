package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/mattn/go-sqlite3"
)

var _ models.Catalog = (*BookRepository)(nil)

// BookRepository implements [models.Catalog] on a SQLite file.
//
// Every call opens its own connection and closes it before returning; no handle is held between calls.
type BookRepository struct {
	path    string
	queries shared.Queries
	logger  *log.Logger
}

// NewBookRepository creates a repository for the store at path and ensures its schema exists.
//
// The in-memory path ":memory:" is rejected: each call would see a new, empty database.
func NewBookRepository(path string, logger *log.Logger) (*BookRepository, error) {
	if path == "" || path == ":memory:" {
		return nil, fmt.Errorf("%w: unusable database path %q", shared.ErrInvalidConfig, path)
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	queries, err := shared.LoadQueries()
	if err != nil {
		return nil, fmt.Errorf("failed to load queries: %w", err)
	}

	for _, name := range []string{searchBookQuery, addBookQuery, editBookQuery, deleteBookQuery} {
		if _, err := queries.Get(name); err != nil {
			return nil, err
		}
	}

	r := &BookRepository{
		path:    path,
		queries: queries,
		logger:  shared.WithLogger(logger, "store", path),
	}

	if err := ensureSchemaOnce(storeKey(path), r.bootstrap); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return r, nil
}

// Path returns the location of the backing store.
func (r *BookRepository) Path() string {
	return r.path
}

// storeKey identifies a store across relative and absolute spellings of its path.
func storeKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (r *BookRepository) bootstrap() error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("ensuring catalog schema")
	return shared.EnsureSchema(db, r.queries)
}

func (r *BookRepository) open() (*sql.DB, error) {
	return shared.NewDatabase(r.path)
}

// Search retrieves the book stored under isbn.
func (r *BookRepository) Search(isbn int64) (models.Book, error) {
	r.logger.Debug("search", "isbn", models.FormatISBN(isbn))

	db, err := r.open()
	if err != nil {
		return models.Book{}, err
	}
	defer db.Close()

	var (
		storedISBN    int64
		title         string
		author        string
		genre         string
		publisher     string
		publishedYear int
	)

	err = db.QueryRow(r.queries[searchBookQuery], isbn).
		Scan(&storedISBN, &title, &author, &genre, &publisher, &publishedYear)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, &models.BookNotFoundError{ISBN: isbn}
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to query book: %w", err)
	}

	return models.RestoreBook(storedISBN, title, author, genre, publisher, publishedYear), nil
}

// Add inserts a new book.
//
// A uniqueness violation reported by SQLite becomes [*models.BookAlreadyExistsError].
func (r *BookRepository) Add(book models.Book) error {
	r.logger.Debug("add", "isbn", book.ISBNString())

	return r.inTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(r.queries[addBookQuery],
			book.ISBN(), book.Title(), book.Author(), book.Genre(), book.Publisher(), book.PublishedYear())
		if isConstraintViolation(err) {
			return &models.BookAlreadyExistsError{ISBN: book.ISBN()}
		}
		if err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}
		return nil
	})
}

// Edit replaces every mutable field of the book stored under book.ISBN().
func (r *BookRepository) Edit(book models.Book) error {
	r.logger.Debug("edit", "isbn", book.ISBNString())

	return r.inTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(r.queries[editBookQuery],
			book.Title(), book.Author(), book.Genre(), book.Publisher(), book.PublishedYear(), book.ISBN())
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		return requireRow(result, book.ISBN())
	})
}

// Delete removes the book stored under isbn.
func (r *BookRepository) Delete(isbn int64) error {
	r.logger.Debug("delete", "isbn", models.FormatISBN(isbn))

	return r.inTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(r.queries[deleteBookQuery], isbn)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		return requireRow(result, isbn)
	})
}

// inTx runs fn in a transaction on a fresh connection.
// The transaction commits only when fn succeeds; any error rolls it back and is returned unchanged.
func (r *BookRepository) inTx(fn func(tx *sql.Tx) error) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func requireRow(result sql.Result, isbn int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &models.BookNotFoundError{ISBN: isbn}
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

package repositories

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// setupTestRepo creates a repository backed by a fresh SQLite file
func setupTestRepo(t *testing.T) *BookRepository {
	t.Helper()

	repo, err := NewBookRepository(filepath.Join(t.TempDir(), "catalog.db"), shared.NewLogger(nil))
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	return repo
}

// countRows counts stored rows for isbn using a separate connection
func countRows(t *testing.T, repo *BookRepository, isbn int64) int {
	t.Helper()

	db, err := shared.NewDatabase(repo.Path())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM books WHERE isbn = ?", isbn).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func mustBuild(t *testing.T, isbn, title string) models.Book {
	t.Helper()

	book, err := models.NewBookBuilder().
		WithISBN(isbn).
		WithTitle(title).
		WithAuthor("Ursula K. Le Guin").
		WithGenre("Fantasy").
		WithPublisher("Parnassus").
		WithPublishedYear("1968").
		Build()
	if err != nil {
		t.Fatalf("failed to build book: %v", err)
	}
	return book
}

func TestBookRepository(t *testing.T) {
	t.Run("Add & Search", func(t *testing.T) {
		repo := setupTestRepo(t)
		book := mustBuild(t, "9780547773742", "A Wizard of Earthsea")

		if err := repo.Add(book); err != nil {
			t.Fatalf("failed to add book: %v", err)
		}

		retrieved, err := repo.Search(book.ISBN())
		if err != nil {
			t.Fatalf("failed to search book: %v", err)
		}

		if !retrieved.Equal(book) {
			t.Errorf("expected %v, got %v", book, retrieved)
		}
	})

	t.Run("Add leading zero ISBN", func(t *testing.T) {
		repo := setupTestRepo(t)
		book := mustBuild(t, "0000000000042", "Zeroes")

		if err := repo.Add(book); err != nil {
			t.Fatalf("failed to add book: %v", err)
		}

		retrieved, err := repo.Search(42)
		if err != nil {
			t.Fatalf("failed to search book: %v", err)
		}

		if retrieved.ISBNString() != "0000000000042" {
			t.Errorf("expected 0000000000042, got %s", retrieved.ISBNString())
		}
	})

	t.Run("Edit", func(t *testing.T) {
		repo := setupTestRepo(t)
		book := mustBuild(t, "9780547773742", "A Wizard of Earthsea")

		if err := repo.Add(book); err != nil {
			t.Fatalf("failed to add book: %v", err)
		}

		updated := mustBuild(t, "9780547773742", "The Tombs of Atuan")
		if err := repo.Edit(updated); err != nil {
			t.Fatalf("failed to edit book: %v", err)
		}

		retrieved, err := repo.Search(book.ISBN())
		if err != nil {
			t.Fatalf("failed to search book: %v", err)
		}

		if retrieved.Title() != "The Tombs of Atuan" {
			t.Errorf("expected updated title, got %s", retrieved.Title())
		}

		if n := countRows(t, repo, book.ISBN()); n != 1 {
			t.Errorf("expected 1 row after edit, got %d", n)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := setupTestRepo(t)
		keep := mustBuild(t, "9780547773742", "A Wizard of Earthsea")
		drop := mustBuild(t, "9780689845369", "The Farthest Shore")

		for _, b := range []models.Book{keep, drop} {
			if err := repo.Add(b); err != nil {
				t.Fatalf("failed to add book: %v", err)
			}
		}

		if err := repo.Delete(drop.ISBN()); err != nil {
			t.Fatalf("failed to delete book: %v", err)
		}

		var notFound *models.BookNotFoundError
		if _, err := repo.Search(drop.ISBN()); !errors.As(err, &notFound) {
			t.Errorf("expected BookNotFoundError after delete, got %v", err)
		}

		if _, err := repo.Search(keep.ISBN()); err != nil {
			t.Errorf("other book should remain: %v", err)
		}
	})

	t.Run("reopen keeps data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.db")
		first, err := NewBookRepository(path, nil)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		book := mustBuild(t, "9780547773742", "A Wizard of Earthsea")
		if err := first.Add(book); err != nil {
			t.Fatalf("failed to add book: %v", err)
		}

		second, err := NewBookRepository(path, nil)
		if err != nil {
			t.Fatalf("failed to reopen repository: %v", err)
		}

		if _, err := second.Search(book.ISBN()); err != nil {
			t.Errorf("expected book to persist across repositories: %v", err)
		}
	})
}

func TestBookRepositoryErrors(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("InMemory", func(t *testing.T) {
			if _, err := NewBookRepository(":memory:", nil); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("EmptyPath", func(t *testing.T) {
			if _, err := NewBookRepository("", nil); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("UnreachablePath", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing", "dir", "catalog.db")
			if _, err := NewBookRepository(path, nil); err == nil {
				t.Fatal("expected error for unreachable path")
			}
		})
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := setupTestRepo(t)

			_, err := repo.Search(1234567890123)

			var notFound *models.BookNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("expected BookNotFoundError, got %v", err)
			}
			if notFound.ISBN != 1234567890123 {
				t.Errorf("expected ISBN 1234567890123, got %d", notFound.ISBN)
			}
		})
	})

	t.Run("Add", func(t *testing.T) {
		t.Run("Duplicate", func(t *testing.T) {
			repo := setupTestRepo(t)
			book := mustBuild(t, "1234567890123", "First")

			if err := repo.Add(book); err != nil {
				t.Fatalf("failed to add first book: %v", err)
			}

			err := repo.Add(mustBuild(t, "1234567890123", "Second"))

			var exists *models.BookAlreadyExistsError
			if !errors.As(err, &exists) {
				t.Fatalf("expected BookAlreadyExistsError, got %v", err)
			}
			if exists.ISBN != 1234567890123 {
				t.Errorf("expected ISBN 1234567890123, got %d", exists.ISBN)
			}

			if n := countRows(t, repo, book.ISBN()); n != 1 {
				t.Errorf("expected exactly 1 row, got %d", n)
			}

			retrieved, err := repo.Search(book.ISBN())
			if err != nil {
				t.Fatalf("failed to search book: %v", err)
			}
			if retrieved.Title() != "First" {
				t.Errorf("expected original row to survive, got %s", retrieved.Title())
			}
		})

		t.Run("OtherConstraintIsNotDuplicate", func(t *testing.T) {
			repo := setupTestRepo(t)

			db, err := shared.NewDatabase(repo.Path())
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			_, err = db.Exec(`CREATE TRIGGER reject_banned BEFORE INSERT ON books
				WHEN NEW.title = 'Banned' BEGIN SELECT RAISE(ABORT, 'banned title'); END`)
			db.Close()
			if err != nil {
				t.Fatalf("failed to create trigger: %v", err)
			}

			book := mustBuild(t, "1234567890123", "Banned")
			err = repo.Add(book)
			if err == nil {
				t.Fatal("expected trigger failure")
			}

			var exists *models.BookAlreadyExistsError
			if errors.As(err, &exists) {
				t.Errorf("trigger failure should not be reported as a duplicate: %v", err)
			}

			if n := countRows(t, repo, book.ISBN()); n != 0 {
				t.Errorf("expected no row after failed insert, got %d", n)
			}
		})

		t.Run("MissingTable", func(t *testing.T) {
			repo := setupTestRepo(t)

			db, err := shared.NewDatabase(repo.Path())
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			_, err = db.Exec("DROP TABLE books")
			db.Close()
			if err != nil {
				t.Fatalf("failed to drop table: %v", err)
			}

			err = repo.Add(mustBuild(t, "1234567890123", "Lost"))
			if err == nil {
				t.Fatal("expected error when table is missing")
			}
			if errors.Is(err, shared.ErrBookExists) || errors.Is(err, shared.ErrBookNotFound) {
				t.Errorf("storage failure should not map to a domain error: %v", err)
			}
		})
	})

	t.Run("Edit", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := setupTestRepo(t)
			book := mustBuild(t, "1234567890123", "Ghost")

			err := repo.Edit(book)

			var notFound *models.BookNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("expected BookNotFoundError, got %v", err)
			}

			if n := countRows(t, repo, book.ISBN()); n != 0 {
				t.Errorf("edit must not create a row, got %d", n)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := setupTestRepo(t)

			err := repo.Delete(1234567890123)
			if !errors.Is(err, shared.ErrBookNotFound) {
				t.Fatalf("expected BookNotFoundError, got %v", err)
			}
		})

		t.Run("Twice", func(t *testing.T) {
			repo := setupTestRepo(t)
			book := mustBuild(t, "1234567890123", "Once")

			if err := repo.Add(book); err != nil {
				t.Fatalf("failed to add book: %v", err)
			}
			if err := repo.Delete(book.ISBN()); err != nil {
				t.Fatalf("failed to delete book: %v", err)
			}
			if err := repo.Delete(book.ISBN()); !errors.Is(err, shared.ErrBookNotFound) {
				t.Errorf("expected BookNotFoundError on second delete, got %v", err)
			}
		})
	})
}

func TestEnsureSchemaOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "once.db")

	calls := 0
	fail := errors.New("boom")

	if err := ensureSchemaOnce(path, func() error { calls++; return fail }); !errors.Is(err, fail) {
		t.Fatalf("expected bootstrap error, got %v", err)
	}

	for range 2 {
		if err := ensureSchemaOnce(path, func() error { calls++; return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if calls != 2 {
		t.Errorf("expected a failed bootstrap to be retried once and then skipped, got %d calls", calls)
	}
}

package models

import (
	"encoding/json"
	"fmt"
)

// ISBNLength is the number of digits in a catalog key.
const ISBNLength = 13

// Book is a validated catalog record.
//
// Values are only produced by [BookBuilder.Build] or restored from storage by [RestoreBook].
type Book struct {
	isbn          int64
	title         string
	author        string
	genre         string
	publisher     string
	publishedYear int
}

// RestoreBook rebuilds a record from stored columns without validating them.
func RestoreBook(isbn int64, title, author, genre, publisher string, publishedYear int) Book {
	return Book{
		isbn:          isbn,
		title:         title,
		author:        author,
		genre:         genre,
		publisher:     publisher,
		publishedYear: publishedYear,
	}
}

// ISBN returns the numeric key. Use [Book.ISBNString] for display.
func (b Book) ISBN() int64 { return b.isbn }

// Title returns the book title.
func (b Book) Title() string { return b.title }

// Author returns the book author.
func (b Book) Author() string { return b.author }

// Genre returns the book genre.
func (b Book) Genre() string { return b.genre }

// Publisher returns the book publisher.
func (b Book) Publisher() string { return b.publisher }

// PublishedYear returns the year of publication.
func (b Book) PublishedYear() int { return b.publishedYear }

// ISBNString renders the key zero-padded to 13 digits.
func (b Book) ISBNString() string {
	return FormatISBN(b.isbn)
}

// Equal reports whether all six fields match.
func (b Book) Equal(other Book) bool {
	return b == other
}

func (b Book) String() string {
	return fmt.Sprintf("%s (%s, %d) ISBN %s", b.title, b.author, b.publishedYear, b.ISBNString())
}

type bookJSON struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	Publisher     string `json:"publisher"`
	PublishedYear int    `json:"published_year"`
}

// MarshalJSON implements [json.Marshaler].
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{
		ISBN:          b.ISBNString(),
		Title:         b.title,
		Author:        b.author,
		Genre:         b.genre,
		Publisher:     b.publisher,
		PublishedYear: b.publishedYear,
	})
}

// FormatISBN renders an integer key as 13 digits.
func FormatISBN(isbn int64) string {
	return fmt.Sprintf("%0*d", ISBNLength, isbn)
}

// ParseISBN converts raw input into a catalog key.
//
// The input must be exactly 13 ASCII digits; no sign, whitespace or separators.
func ParseISBN(raw string) (int64, bool) {
	if len(raw) != ISBNLength || !isDigits(raw) {
		return 0, false
	}

	var n int64
	for i := 0; i < len(raw); i++ {
		n = n*10 + int64(raw[i]-'0')
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Catalog defines the persistence operations for books.
//
// Implementations return [*BookNotFoundError] from Search, Edit and Delete when no record matches,
// and [*BookAlreadyExistsError] from Add when the ISBN is taken.
type Catalog interface {
	Search(isbn int64) (Book, error) // Search retrieves the record stored under isbn
	Add(book Book) error             // Add stores a new record
	Edit(book Book) error            // Edit replaces the fields of the record stored under book.ISBN()
	Delete(isbn int64) error         // Delete removes the record stored under isbn
}

package models

import "strconv"

// Field names reported in [Violation.Field], in validation order.
const (
	FieldISBN          = "isbn"
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldGenre         = "genre"
	FieldPublisher     = "publisher"
	FieldPublishedYear = "published_year"
)

// BookBuilder accumulates raw field values for a single [Book].
//
// Setters return the builder so calls can be chained. Nothing is checked until [BookBuilder.Build].
type BookBuilder struct {
	isbn          string
	title         string
	author        string
	genre         string
	publisher     string
	publishedYear string
}

// NewBookBuilder returns an empty builder.
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{}
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.isbn = isbn
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.author = author
	return b
}

func (b *BookBuilder) WithGenre(genre string) *BookBuilder {
	b.genre = genre
	return b
}

func (b *BookBuilder) WithPublisher(publisher string) *BookBuilder {
	b.publisher = publisher
	return b
}

func (b *BookBuilder) WithPublishedYear(year string) *BookBuilder {
	b.publishedYear = year
	return b
}

// Build validates every field and returns the record, or a [*ValidationError] listing all failures.
//
// Failures are reported in field order: ISBN, title, author, genre, publisher, published year.
func (b *BookBuilder) Build() (Book, error) {
	verr := &ValidationError{}

	isbn, ok := ParseISBN(b.isbn)
	verr.check(ok, FieldISBN, "ISBN must be a valid 13 digits number.")
	verr.check(b.title != "", FieldTitle, "Title cannot be empty.")
	verr.check(b.author != "", FieldAuthor, "Author cannot be empty.")
	verr.check(b.genre != "", FieldGenre, "Genre cannot be empty.")
	verr.check(b.publisher != "", FieldPublisher, "Publisher cannot be empty.")

	year, err := parseYear(b.publishedYear)
	verr.check(err == nil, FieldPublishedYear, "Published year must be a valid number.")

	if len(verr.Violations) > 0 {
		return Book{}, verr
	}

	return Book{
		isbn:          isbn,
		title:         b.title,
		author:        b.author,
		genre:         b.genre,
		publisher:     b.publisher,
		publishedYear: year,
	}, nil
}

// parseYear accepts ASCII digits only; strconv.Atoi alone would let a sign through.
func parseYear(raw string) (int, error) {
	if !isDigits(raw) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(raw)
}

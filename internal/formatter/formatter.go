// package formatter renders catalog records as plain text, Markdown, CSV or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// Format names accepted by [Render].
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatMarkdown, FormatCSV, FormatJSON}

// Render dispatches to the formatter registered under format.
func Render(book models.Book, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return ToText(book), nil
	case FormatMarkdown:
		return ToMarkdown(book), nil
	case FormatCSV:
		return ToCSV(book)
	case FormatJSON:
		return ToJSON(book, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ToText renders one labelled line per field.
func ToText(book models.Book) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("ISBN: %s\n", book.ISBNString()))
	buf.WriteString(fmt.Sprintf("Title: %s\n", book.Title()))
	buf.WriteString(fmt.Sprintf("Author: %s\n", book.Author()))
	buf.WriteString(fmt.Sprintf("Genre: %s\n", book.Genre()))
	buf.WriteString(fmt.Sprintf("Publisher: %s\n", book.Publisher()))
	buf.WriteString(fmt.Sprintf("Published Year: %d\n", book.PublishedYear()))

	return buf.Bytes()
}

// ToMarkdown renders the title as a heading followed by a field list.
func ToMarkdown(book models.Book) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", book.Title()))
	buf.WriteString(fmt.Sprintf("- **Author**: %s\n", book.Author()))
	buf.WriteString(fmt.Sprintf("- **Genre**: %s\n", book.Genre()))
	buf.WriteString(fmt.Sprintf("- **Publisher**: %s\n", book.Publisher()))
	buf.WriteString(fmt.Sprintf("- **Published**: %d\n", book.PublishedYear()))
	buf.WriteString(fmt.Sprintf("- **ISBN**: `%s`\n", book.ISBNString()))

	return buf.Bytes()
}

// ToCSV renders a header row and one record with columns: ISBN, Title, Author, Genre, Publisher, Published Year
func ToCSV(book models.Book) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ISBN", "Title", "Author", "Genre", "Publisher", "Published Year"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	record := []string{
		book.ISBNString(),
		book.Title(),
		book.Author(),
		book.Genre(),
		book.Publisher(),
		strconv.Itoa(book.PublishedYear()),
	}
	if err := writer.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToJSON renders the record's JSON form followed by a newline.
func ToJSON(book models.Book, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(book, "", "  ")
	} else {
		data, err = json.Marshal(book)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(data, '\n'), nil
}

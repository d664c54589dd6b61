package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/shelf/internal/shared"
)

// Violation is a single failed field check.
type Violation struct {
	Field   string
	Message string
}

// ValidationError carries every violation found by [BookBuilder.Build], in field order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) check(ok bool, field, message string) {
	if !ok {
		e.Violations = append(e.Violations, Violation{Field: field, Message: message})
	}
}

// Messages returns the human-readable violation messages in order.
func (e *ValidationError) Messages() []string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Message
	}
	return messages
}

// Fields returns the names of the failed fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation errors found:")
	for _, v := range e.Violations {
		sb.WriteString("\n- ")
		sb.WriteString(v.Message)
	}
	return sb.String()
}

func (e *ValidationError) Is(target error) bool { return target == shared.ErrValidation }

// BookNotFoundError is returned when no record is stored under ISBN.
type BookNotFoundError struct {
	ISBN int64
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("The book with ISBN '%s' was not found.", FormatISBN(e.ISBN))
}

func (e *BookNotFoundError) Is(target error) bool { return target == shared.ErrBookNotFound }

// BookAlreadyExistsError is returned when adding a record whose ISBN is already stored.
type BookAlreadyExistsError struct {
	ISBN int64
}

func (e *BookAlreadyExistsError) Error() string {
	return fmt.Sprintf("The book with ISBN '%s' already exists in the catalog.", FormatISBN(e.ISBN))
}

func (e *BookAlreadyExistsError) Is(target error) bool { return target == shared.ErrBookExists }

package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/desertthunder/shelf/internal/formatter"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseKey checks an ISBN given for lookup or removal before the store is touched.
func parseKey(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: --isbn", shared.ErrMissingArgument)
	}
	isbn, ok := models.ParseISBN(raw)
	if !ok {
		return 0, fmt.Errorf("%w: ISBN must be exactly 13 digits, got %q", shared.ErrInvalidArgument, raw)
	}
	return isbn, nil
}

func builderFromFlags(cmd *cli.Command) *models.BookBuilder {
	return models.NewBookBuilder().
		WithISBN(cmd.String("isbn")).
		WithTitle(cmd.String("title")).
		WithAuthor(cmd.String("author")).
		WithGenre(cmd.String("genre")).
		WithPublisher(cmd.String("publisher")).
		WithPublishedYear(cmd.String("year"))
}

// BookSearch looks up a book by ISBN and prints it in the requested format.
func (r *Runner) BookSearch(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format != "" && !slices.Contains(formatter.Formats, format) {
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	isbn, err := parseKey(cmd.String("isbn"))
	if err != nil {
		return err
	}

	catalog, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}

	book, err := catalog.Search(isbn)
	if err != nil {
		return err
	}

	out, err := formatter.Render(book, format)
	if err != nil {
		return err
	}

	return r.write(out)
}

// BookAdd builds a record from flags and adds it to the catalog.
func (r *Runner) BookAdd(ctx context.Context, cmd *cli.Command) error {
	book, err := builderFromFlags(cmd).Build()
	if err != nil {
		return err
	}

	catalog, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}

	if err := catalog.Add(book); err != nil {
		return err
	}

	r.logger.Info("book added", "isbn", book.ISBNString())
	return r.writePlain("✓ Book added successfully!\n")
}

// BookEdit builds a record from flags and replaces the stored one with the same ISBN.
func (r *Runner) BookEdit(ctx context.Context, cmd *cli.Command) error {
	book, err := builderFromFlags(cmd).Build()
	if err != nil {
		return err
	}

	catalog, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}

	if err := catalog.Edit(book); err != nil {
		return err
	}

	r.logger.Info("book edited", "isbn", book.ISBNString())
	return r.writePlain("✓ Book edited successfully!\n")
}

// BookDelete removes the book stored under the given ISBN.
func (r *Runner) BookDelete(ctx context.Context, cmd *cli.Command) error {
	isbn, err := parseKey(cmd.String("isbn"))
	if err != nil {
		return err
	}

	catalog, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}

	if err := catalog.Delete(isbn); err != nil {
		return err
	}

	r.logger.Info("book deleted", "isbn", models.FormatISBN(isbn))
	return r.writePlain("✓ Book deleted successfully!\n")
}

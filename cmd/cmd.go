// submodule cmd contains command definitions
package main

import (
	"strings"

	"github.com/desertthunder/shelf/internal/formatter"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func isbnFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "isbn",
		Usage:    "13 digit ISBN",
		Required: true,
	}
}

// recordFlags are the raw fields passed to the book builder.
func recordFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "isbn", Usage: "13 digit ISBN"},
		&cli.StringFlag{Name: "title", Usage: "Book title"},
		&cli.StringFlag{Name: "author", Usage: "Author name"},
		&cli.StringFlag{Name: "genre", Usage: "Genre"},
		&cli.StringFlag{Name: "publisher", Usage: "Publisher"},
		&cli.StringFlag{Name: "year", Aliases: []string{"published-year"}, Usage: "Year of publication"},
	}
}

// setupCommand creates the config file and initializes the catalog store.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml if missing and initialize the catalog database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// bookCommand handles single-record catalog operations
func bookCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "book",
		Aliases: []string{"b"},
		Usage:   "Search, add, edit or delete a book",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Look up a book by ISBN",
				Flags: []cli.Flag{
					configFlag(),
					isbnFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: " + strings.Join(formatter.Formats, ", "),
						Value:   formatter.FormatText,
					},
				},
				Action: r.BookSearch,
			},
			{
				Name:   "add",
				Usage:  "Add a new book",
				Flags:  recordFlags(),
				Action: r.BookAdd,
			},
			{
				Name:   "edit",
				Usage:  "Replace the fields of an existing book",
				Flags:  recordFlags(),
				Action: r.BookEdit,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a book by ISBN",
				Flags:   []cli.Flag{configFlag(), isbnFlag()},
				Action:  r.BookDelete,
			},
		},
	}
}

// tuiCommand returns the top-level command for the interactive form.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive catalog form",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "File receiving log output while the form is open",
				Value: "./tmp/shelf-tui.log",
			},
		},
		Action: r.TUI,
	}
}

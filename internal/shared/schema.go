package shared

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// SchemaQuery is the name of the script that creates the catalog tables.
const SchemaQuery = "create_table"

// Queries maps a statement name (its file name without ".sql") to its SQL text.
type Queries map[string]string

// LoadQueries reads every embedded .sql file.
//
// A file named "search_book.sql" is available under the key "search_book".
func LoadQueries() (Queries, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read sql directory: %w", err)
	}

	queries := make(Queries)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		content, err := sqlFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read sql file %s: %w", name, err)
		}

		queries[strings.TrimSuffix(name, ".sql")] = strings.TrimSpace(string(content))
	}

	return queries, nil
}

// Get returns the named statement or an error naming the missing file.
func (q Queries) Get(name string) (string, error) {
	stmt, ok := q[name]
	if !ok || stmt == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingQuery, name)
	}
	return stmt, nil
}

// EnsureSchema executes the schema script inside a single transaction.
//
// The script only uses IF NOT EXISTS statements, so running it against an initialized store changes nothing.
func EnsureSchema(db *sql.DB, queries Queries) error {
	script, err := queries.Get(SchemaQuery)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(removeComments(stmt))
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, stmt)
		}
	}

	return tx.Commit()
}

// removeComments removes SQL comments from a statement.
func removeComments(sql string) string {
	lines := strings.Split(sql, "\n")
	var result []string
	for _, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

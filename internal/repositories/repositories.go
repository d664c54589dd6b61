// package repositories provides the persistence layer for the catalog.
package repositories

import "sync"

// Statement names, matching the embedded sql/*.sql files in package shared.
const (
	searchBookQuery = "search_book"
	addBookQuery    = "add_book"
	editBookQuery   = "edit_book"
	deleteBookQuery = "delete_book"
)

var (
	schemaMu    sync.Mutex
	schemaReady = map[string]bool{}
)

// ensureSchemaOnce runs bootstrap the first time a store path is seen in this process.
//
// A failed bootstrap is not recorded, so the next repository for the same path retries it.
func ensureSchemaOnce(path string, bootstrap func() error) error {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if schemaReady[path] {
		return nil
	}

	if err := bootstrap(); err != nil {
		return err
	}

	schemaReady[path] = true
	return nil
}

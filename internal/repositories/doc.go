// Package repositories implements SQLite persistence for the catalog.
//
// [BookRepository] is the only gateway to the store. It satisfies [models.Catalog] and follows three rules:
//   - each operation opens, uses and closes its own connection;
//   - Add, Edit and Delete run in a single transaction that is rolled back on any error;
//   - conflict and not-found outcomes come from SQLite itself (the UNIQUE constraint on isbn and the affected-row count),
//     never from a separate read before the write.
//
// The schema script runs once per store path per process when the first repository for that path is created.
package repositories

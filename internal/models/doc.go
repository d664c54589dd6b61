// Package models defines the catalog's single entity and the rules for constructing it.
//
//   - [Book] : an immutable, validated catalog record keyed by a 13-digit ISBN
//   - [BookBuilder] : accumulates raw text fields and validates them as a batch
//   - [Catalog] : the persistence operations a store offers for books
//
// Errors are typed so callers can branch on them with errors.As:
// [ValidationError] lists every failed field, [BookNotFoundError] and [BookAlreadyExistsError] carry the ISBN involved.
package models

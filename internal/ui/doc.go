// Package ui implements the interactive catalog form using bubbletea's Elm architecture.
//
// The form has one text input per book field. Key bindings trigger catalog operations:
//   - ctrl+s : search by ISBN and fill the form with the stored record
//   - ctrl+a : build a record from the form and add it
//   - ctrl+e : build a record from the form and edit the stored one
//   - ctrl+d : delete the record under the ISBN in the form
//   - ctrl+l : clear the form
//
// Catalog calls run as [tea.Cmd]s and report back through the [Msg] union type.
// Validation happens synchronously in [models.BookBuilder]; every violation is shown at once.
package ui

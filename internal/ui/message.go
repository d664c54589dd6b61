package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/shelf/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgBookFound MsgKind = iota
	MsgBookSaved
)

// Action names a catalog write.
type Action string

const (
	ActionAdd    Action = "added"
	ActionEdit   Action = "edited"
	ActionDelete Action = "deleted"
)

type bookFoundData struct {
	book models.Book
	err  error
}

type bookSavedData struct {
	action Action
	err    error
}

// bookFoundMsg is the constructor for [MsgBookFound]
func bookFoundMsg(book models.Book, err error) Msg {
	return Msg{kind: MsgBookFound, data: bookFoundData{book, err}}
}

// bookSavedMsg is the constructor for [MsgBookSaved]
func bookSavedMsg(action Action, err error) Msg {
	return Msg{kind: MsgBookSaved, data: bookSavedData{action, err}}
}

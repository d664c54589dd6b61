package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// Field indexes into the form inputs, in display order.
type Field int

const (
	FieldISBN Field = iota
	FieldTitle
	FieldAuthor
	FieldGenre
	FieldPublisher
	FieldPublishedYear
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"ISBN (13 digits)",
	"Title",
	"Author",
	"Genre",
	"Publisher",
	"Published year",
}

// Model represents the form state.
type Model struct {
	catalog models.Catalog
	inputs  []textinput.Model
	focus   Field
	status  string
	err     error
	busy    bool
	width   int
	help    help.Model
	keys    keyMap
}

// NewModel creates a form bound to catalog with an empty input per field.
func NewModel(catalog models.Catalog) *Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = fieldLabels[i]
		in.Width = 50
		inputs[i] = in
	}
	inputs[FieldISBN].Focus()

	return &Model{
		catalog: catalog,
		inputs:  inputs,
		focus:   FieldISBN,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the cursor blinking in the focused input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKeys(msg); handled {
			return m, cmd
		}

	case Msg:
		m.busy = false
		return m, m.handleResult(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.next):
		return m.setFocus((m.focus + 1) % fieldCount), true
	case key.Matches(msg, m.keys.prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), true
	case key.Matches(msg, m.keys.clear):
		m.clearForm()
		m.status, m.err = "", nil
		return m.setFocus(FieldISBN), true
	}

	if m.busy {
		return nil, key.Matches(msg, m.keys.search, m.keys.add, m.keys.edit, m.keys.delete)
	}

	switch {
	case key.Matches(msg, m.keys.search):
		return m.search(), true
	case key.Matches(msg, m.keys.add):
		return m.save(ActionAdd), true
	case key.Matches(msg, m.keys.edit):
		return m.save(ActionEdit), true
	case key.Matches(msg, m.keys.delete):
		return m.delete(), true
	}

	return nil, false
}

func (m *Model) handleResult(msg Msg) tea.Cmd {
	switch msg.kind {
	case MsgBookFound:
		data := msg.data.(bookFoundData)
		if data.err != nil {
			m.fail(data.err)
			return nil
		}
		m.populate(data.book)
		m.succeed(fmt.Sprintf("Found %q", data.book.Title()))
	case MsgBookSaved:
		data := msg.data.(bookSavedData)
		if data.err != nil {
			m.fail(data.err)
			return nil
		}
		m.clearForm()
		m.succeed(fmt.Sprintf("Book %s successfully!", data.action))
		return m.setFocus(FieldISBN)
	}
	return nil
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

// isbnKey reads the ISBN input for search and delete, which skip the builder.
func (m *Model) isbnKey() (int64, bool) {
	isbn, ok := models.ParseISBN(m.Value(FieldISBN))
	if !ok {
		m.fail(fmt.Errorf("%w: please enter a valid 13 digit ISBN", shared.ErrInvalidArgument))
	}
	return isbn, ok
}

func (m *Model) search() tea.Cmd {
	isbn, ok := m.isbnKey()
	if !ok {
		return nil
	}

	m.busy = true
	return func() tea.Msg {
		book, err := m.catalog.Search(isbn)
		return bookFoundMsg(book, err)
	}
}

func (m *Model) delete() tea.Cmd {
	isbn, ok := m.isbnKey()
	if !ok {
		return nil
	}

	m.busy = true
	return func() tea.Msg {
		return bookSavedMsg(ActionDelete, m.catalog.Delete(isbn))
	}
}

func (m *Model) save(action Action) tea.Cmd {
	book, err := m.builder().Build()
	if err != nil {
		m.fail(err)
		return nil
	}

	m.busy = true
	return func() tea.Msg {
		if action == ActionEdit {
			return bookSavedMsg(action, m.catalog.Edit(book))
		}
		return bookSavedMsg(action, m.catalog.Add(book))
	}
}

func (m *Model) builder() *models.BookBuilder {
	return models.NewBookBuilder().
		WithISBN(m.Value(FieldISBN)).
		WithTitle(m.Value(FieldTitle)).
		WithAuthor(m.Value(FieldAuthor)).
		WithGenre(m.Value(FieldGenre)).
		WithPublisher(m.Value(FieldPublisher)).
		WithPublishedYear(m.Value(FieldPublishedYear))
}

func (m *Model) populate(book models.Book) {
	m.inputs[FieldISBN].SetValue(book.ISBNString())
	m.inputs[FieldTitle].SetValue(book.Title())
	m.inputs[FieldAuthor].SetValue(book.Author())
	m.inputs[FieldGenre].SetValue(book.Genre())
	m.inputs[FieldPublisher].SetValue(book.Publisher())
	m.inputs[FieldPublishedYear].SetValue(fmt.Sprint(book.PublishedYear()))
}

func (m *Model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func (m *Model) fail(err error) {
	m.status, m.err = "", err
}

func (m *Model) succeed(status string) {
	m.status, m.err = status, nil
}

// Value returns the current raw text of a form field.
func (m *Model) Value(f Field) string {
	return m.inputs[f].Value()
}

// SetValue replaces the raw text of a form field.
func (m *Model) SetValue(f Field, v string) {
	m.inputs[f].SetValue(v)
}

// Err returns the error shown in the status area, if any.
func (m *Model) Err() error { return m.err }

// Status returns the success message shown in the status area, if any.
func (m *Model) Status() string { return m.status }

// View renders the form, the status area and the key help.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.title.Render("Books Catalog"))
	sb.WriteString("\n")

	for i := range m.inputs {
		sb.WriteString(styles.label.Render(fieldLabels[i]))
		sb.WriteString(" ")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *Model) renderStatus() string {
	if m.busy {
		return styles.warn.Render("Working...")
	}

	if m.err != nil {
		var verr *models.ValidationError
		if errors.As(m.err, &verr) {
			lines := []string{styles.err.Render("Please correct the following issues:")}
			for _, msg := range verr.Messages() {
				lines = append(lines, styles.err.Render("  • "+msg))
			}
			return strings.Join(lines, "\n")
		}
		return styles.err.Render("Error: " + m.err.Error())
	}

	if m.status != "" {
		return styles.ok.Render("✓ " + m.status)
	}

	return styles.help.Render("Fill in the form, then choose an action.")
}

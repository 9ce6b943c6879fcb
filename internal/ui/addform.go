package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const dueLayout = "2006-01-02"

// addForm is the inline new-task form on the tasks tab.
type addForm struct {
	open  bool
	title textinput.Model
	notes textinput.Model
	due   textinput.Model
	focus int
	err   string
}

func (f *addForm) visible() bool { return f.open }

func newAddForm() addForm {
	title := textinput.New()
	title.Placeholder = "task title"
	title.CharLimit = 256
	title.Width = 40

	notes := textinput.New()
	notes.Placeholder = "notes (optional)"
	notes.CharLimit = 1024
	notes.Width = 40

	due := textinput.New()
	due.Placeholder = "due date YYYY-MM-DD (optional)"
	due.CharLimit = 10
	due.Width = 40

	return addForm{title: title, notes: notes, due: due}
}

func (f *addForm) reset() {
	f.title.Reset()
	f.notes.Reset()
	f.due.Reset()
	f.err = ""
	f.focus = 0
	f.title.Focus()
	f.notes.Blur()
	f.due.Blur()
}

func (f *addForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.notes, &f.due}
}

func (f *addForm) cycle(delta int) {
	inputs := f.inputs()
	f.focus = (f.focus + delta + len(inputs)) % len(inputs)
	for i, in := range inputs {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, in := range f.inputs() {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// parseDue validates the optional due field. An empty field yields the
// zero time.
func (f *addForm) parseDue() (time.Time, bool) {
	raw := strings.TrimSpace(f.due.Value())
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.ParseInLocation(dueLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Package tui is the interactive terminal view. Key presses become controller
// events and render commands update a view.Screen that View draws.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/view"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model contains UI state. It is also the controller.View of its session.
type Model struct {
	ctx     context.Context
	session *app.Session
	screen  view.Screen

	input textinput.Model
	edit  textinput.Model

	focus  focus
	cursor int
	status string

	changes <-chan store.Event

	width  int
	height int
}

var _ controller.View = (*Model)(nil)

type errMsg struct{ err error }

type changedMsg struct{}

// New creates a UI model. It renders nothing until Start attaches a session.
func New(ctx context.Context) *Model {
	in := textinput.New()
	in.Placeholder = "What needs to be done?"
	in.CharLimit = 256
	in.Prompt = "❯ "
	in.Styles.Cursor.Color = lipgloss.Color("218")
	in.Focus()

	ed := textinput.New()
	ed.CharLimit = 256
	ed.Prompt = ""

	return &Model{
		ctx:    ctx,
		input:  in,
		edit:   ed,
		focus:  focusInput,
		status: helpInput,
	}
}

// Start attaches the session rendering into m and loads route. External
// changes to the collection are followed when the backend can watch.
func (m *Model) Start(s *app.Session, route controller.Route) error {
	m.session = s
	if err := s.Show(m.ctx, route); err != nil {
		return err
	}
	ch, err := s.Watch(m.ctx)
	switch {
	case errors.Is(err, store.ErrWatchUnsupported):
	case err != nil:
		return err
	default:
		m.changes = ch
	}
	return nil
}

// Screen returns the state built from the commands rendered so far.
func (m *Model) Screen() *view.Screen {
	return &m.screen
}

// Render implements controller.View.
func (m *Model) Render(cmd controller.Command) {
	m.screen.Render(cmd)
	switch cmd := cmd.(type) {
	case controller.ClearNewTodo:
		m.input.Reset()
	case controller.EditItem:
		m.edit.SetValue(cmd.Title)
		m.edit.CursorEnd()
		m.edit.Focus()
		m.input.Blur()
	case controller.EditItemDone, controller.RemoveItem:
		if m.screen.Editing == 0 {
			m.edit.Blur()
		}
	}
	m.clampCursor()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case changedMsg:
		m.do(&cmds, func(ctx context.Context) error {
			return m.session.Controller.Refresh(ctx)
		})
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.screen.Editing != 0:
			m.updateEdit(msg, &cmds)
		case m.focus == focusInput:
			m.updateInput(msg, &cmds)
		default:
			if m.updateList(msg, &cmds) {
				return m, tea.Quit
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// do runs fn against the session and reports its error in the status line.
func (m *Model) do(cmds *[]tea.Cmd, fn func(ctx context.Context) error) {
	if m.session == nil {
		return
	}
	if err := fn(m.ctx); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
	}
}

func (m *Model) dispatch(cmds *[]tea.Cmd, ev controller.Event) {
	m.do(cmds, func(ctx context.Context) error {
		return m.session.Dispatch(ctx, ev)
	})
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m *Model) setFocus(f focus, cmds *[]tea.Cmd) {
	m.focus = f
	if f == focusInput {
		m.status = helpInput
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return
	}
	m.status = helpList
	m.input.Blur()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.screen.Items) {
		m.cursor = len(m.screen.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the id and state of the item under the cursor.
func (m *Model) selected() (int, bool, bool) {
	if m.cursor < 0 || m.cursor >= len(m.screen.Items) {
		return 0, false, false
	}
	i := m.screen.Items[m.cursor]
	return i.ID, i.Completed, true
}

// Run starts the program on the terminal until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

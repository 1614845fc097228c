package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todo/pkg/controller"
)

const (
	helpInput = "enter add, tab list, ctrl+c quit"
	helpList  = "j/k move, space toggle, e edit, d delete, a toggle all, c clear completed, 1/2/3 filter, tab input, q quit"
	helpEdit  = "enter save, esc cancel"
)

func (m *Model) updateInput(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.dispatch(cmds, controller.NewTodo{Title: m.input.Value()})
	case "tab", "esc":
		m.setFocus(focusList, cmds)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateEdit(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	id := m.screen.Editing
	switch msg.String() {
	case "enter":
		m.dispatch(cmds, controller.ItemEditDone{ID: id, Title: m.edit.Value()})
	case "esc":
		m.dispatch(cmds, controller.ItemEditCancel{ID: id})
		// The item may have been removed elsewhere.
		m.screen.Editing = 0
	default:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		*cmds = append(*cmds, cmd)
		return
	}
	if m.screen.Editing == 0 {
		m.edit.Blur()
		m.status = helpList
	}
}

// updateList handles keys while the list has focus. It reports whether the
// program should quit.
func (m *Model) updateList(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		return true
	case "tab", "n", "i":
		m.setFocus(focusInput, cmds)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.screen.Items)-1 {
			m.cursor++
		}
	case "space", "x":
		if id, completed, ok := m.selected(); ok {
			m.dispatch(cmds, controller.ItemToggle{ID: id, Completed: !completed})
		}
	case "d", "delete", "backspace":
		if id, _, ok := m.selected(); ok {
			m.dispatch(cmds, controller.ItemRemove{ID: id})
		}
	case "e", "enter":
		if id, _, ok := m.selected(); ok {
			m.dispatch(cmds, controller.ItemEdit{ID: id})
			if m.screen.Editing != 0 {
				m.status = helpEdit
			}
		}
	case "a":
		m.dispatch(cmds, controller.ToggleAllItems{Completed: !m.screen.AllChecked})
	case "c":
		m.dispatch(cmds, controller.RemoveCompleted{})
	case "1":
		m.dispatch(cmds, controller.RouteChange{Hash: controller.RouteAll.Hash()})
	case "2":
		m.dispatch(cmds, controller.RouteChange{Hash: controller.RouteActive.Hash()})
	case "3":
		m.dispatch(cmds, controller.RouteChange{Hash: controller.RouteCompleted.Hash()})
	}
	return false
}

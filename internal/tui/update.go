package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input outside of editing
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.cursor = (m.cursor + fieldCount - 1) % fieldCount
		return m, nil

	case key.Matches(msg, keys.Down):
		m.cursor = (m.cursor + 1) % fieldCount
		return m, nil

	case key.Matches(msg, keys.Edit):
		return m.startEdit()

	case key.Matches(msg, keys.PageUp):
		m.offset -= m.visibleRows()
		if m.offset < 0 {
			m.offset = 0
		}
		return m, nil

	case key.Matches(msg, keys.PageDown):
		m.offset += m.visibleRows()
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
		return m, nil

	case key.Matches(msg, keys.Interval):
		m.every = nextInterval(m.every)
		m.offset = 0
		return m, nil
	}
	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	f := fields[m.cursor]
	ti := newFieldInput()
	ti.Placeholder = f.value(m.calc)
	ti.Focus()

	m.input = ti
	m.editing = true
	m.err = nil
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case msg.Type == tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		if err := applyField(m.calc, m.cursor, m.input.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextInterval(every int) int {
	for i, n := range intervals {
		if n == every {
			return intervals[(i+1)%len(intervals)]
		}
	}
	return intervals[0]
}

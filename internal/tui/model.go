package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

// intervals cycled by the interval key, in months between table rows.
var intervals = []int{12, 6, 3, 1}

// Model is the interactive calculator. Every edit is applied through the
// calculator's setters; a rejected edit leaves the calculator untouched and
// shows the error instead.
type Model struct {
	calc *calculation.TimeWindowCalculator

	cursor  int
	editing bool
	input   textinput.Model
	err     error

	every  int
	offset int // first table row shown

	projection []domain.ProjectionPoint
	summary    domain.ScenarioSummary

	width  int
	height int
}

// NewModel creates a model editing calc. every is the initial number of
// months between table rows.
func NewModel(calc *calculation.TimeWindowCalculator, every int) Model {
	if every <= 0 {
		every = intervals[0]
	}
	m := Model{
		calc:   calc,
		every:  every,
		input:  newFieldInput(),
		width:  80,
		height: 40,
	}
	m.recompute()
	return m
}

func newFieldInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Calculator returns the calculator being edited.
func (m Model) Calculator() *calculation.TimeWindowCalculator {
	return m.calc
}

// Err returns the error from the last rejected edit, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) recompute() {
	m.summary = calculation.Summarize("", m.calc)
	m.projection = m.summary.Projection
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
}

func (m Model) tableRows() []int {
	return output.SampleIndices(len(m.projection), m.every)
}

func (m Model) visibleRows() int {
	// title, fields, summary panel, help and padding
	rows := m.height - fieldCount - 14
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m Model) maxOffset() int {
	n := len(m.tableRows()) - m.visibleRows()
	if n < 0 {
		return 0
	}
	return n
}

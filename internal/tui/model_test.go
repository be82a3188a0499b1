package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Cleanup(calculation.SetNowFunc(func() time.Time {
		return time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	}))
	calc := calculation.NewTimeWindowCalculator()
	calc.SetStartAmount(decimal.NewFromInt(360000))
	require.NoError(t, calc.SetMonthlyWithdrawalAmount(decimal.NewFromInt(1000)))
	return NewModel(calc, 12)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// edit moves the cursor to field, enters value and confirms it.
func edit(m Model, field int, value string) Model {
	for m.cursor != field {
		m = send(m, down)
	}
	return send(m, enter, typed(value), enter)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, fieldStartMonth, m.cursor)
	assert.False(t, m.editing)
	assert.Equal(t, 12, m.every)
	assert.Len(t, m.projection, 361)
	assert.Nil(t, m.Init())
}

func TestEditDuration(t *testing.T) {
	m := edit(newTestModel(t), fieldDuration, "120")

	require.NoError(t, m.Err())
	assert.False(t, m.editing)
	assert.Equal(t, 120, m.calc.DurationInMonths())
	assert.Equal(t, time.Date(2035, 12, 31, 0, 0, 0, 0, time.UTC), m.calc.EndMonth())
	assert.Len(t, m.projection, 121)
}

func TestEditRejectedKeepsPreviousValues(t *testing.T) {
	tests := []struct {
		name     string
		field    int
		value    string
		outOfRng bool
		errMsg   string
	}{
		{name: "zero duration", field: fieldDuration, value: "0", outOfRng: true, errMsg: "duration must be positive"},
		{name: "text duration", field: fieldDuration, value: "abc", errMsg: "invalid duration"},
		{name: "end before start", field: fieldEndMonth, value: "2025-12", outOfRng: true, errMsg: "end month must not be earlier than start month"},
		{name: "bad month", field: fieldStartMonth, value: "2026-13", errMsg: "invalid month"},
		{name: "negative monthly", field: fieldMonthly, value: "-1", outOfRng: true, errMsg: "must not be less than zero"},
		{name: "bad amount", field: fieldStartAmount, value: "lots", errMsg: "invalid amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := edit(newTestModel(t), tt.field, tt.value)

			require.Error(t, m.Err())
			assert.Contains(t, m.Err().Error(), tt.errMsg)
			if tt.outOfRng {
				assert.ErrorIs(t, m.Err(), domain.ErrOutOfRange)
			}
			assert.Equal(t, 360, m.calc.DurationInMonths())
			assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), m.calc.StartMonth())
			assert.Equal(t, time.Date(2055, 12, 31, 0, 0, 0, 0, time.UTC), m.calc.EndMonth())
			assert.True(t, m.calc.MonthlyWithdrawalAmount().Equal(decimal.NewFromInt(1000)))
			assert.True(t, m.calc.StartAmount().Equal(decimal.NewFromInt(360000)))
			assert.Contains(t, m.View(), tt.errMsg)
		})
	}
}

func TestErrorClearedOnNextEdit(t *testing.T) {
	m := edit(newTestModel(t), fieldDuration, "0")
	require.Error(t, m.Err())

	m = send(m, enter)
	assert.True(t, m.editing)
	assert.NoError(t, m.Err())
}

func TestEditWithdrawalMirrors(t *testing.T) {
	m := edit(newTestModel(t), fieldMonthly, "2500")
	assert.True(t, m.calc.AnnualWithdrawalAmount().Equal(decimal.NewFromInt(30000)))

	m = edit(m, fieldAnnual, "60000")
	assert.True(t, m.calc.MonthlyWithdrawalAmount().Equal(decimal.NewFromInt(5000)))
	assert.True(t, m.summary.FinalBalance.Equal(decimal.NewFromInt(360000-5000*360)))
}

func TestEditStartMonthMovesEnd(t *testing.T) {
	m := edit(newTestModel(t), fieldStartMonth, "2030-07")

	require.NoError(t, m.Err())
	assert.Equal(t, time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC), m.calc.StartMonth())
	assert.Equal(t, 360, m.calc.DurationInMonths())
	assert.Equal(t, time.Date(2060, 6, 30, 0, 0, 0, 0, time.UTC), m.calc.EndMonth())
}

func TestEditEndMonthUpdatesDuration(t *testing.T) {
	m := edit(newTestModel(t), fieldEndMonth, "2026-12")

	require.NoError(t, m.Err())
	assert.Equal(t, 12, m.calc.DurationInMonths())
}

func TestEditStartAmountToZeroEmptiesProjection(t *testing.T) {
	m := edit(newTestModel(t), fieldStartAmount, "0")

	require.NoError(t, m.Err())
	assert.Empty(t, m.projection)
	assert.Contains(t, m.View(), "No starting capital")
}

func TestCancelAndEmptyInput(t *testing.T) {
	m := newTestModel(t)
	for m.cursor != fieldDuration {
		m = send(m, down)
	}

	m = send(m, enter, typed("12"), esc)
	assert.False(t, m.editing)
	assert.Equal(t, 360, m.calc.DurationInMonths())

	m = send(m, enter, enter)
	assert.False(t, m.editing)
	assert.NoError(t, m.Err())
	assert.Equal(t, 360, m.calc.DurationInMonths())
}

func TestTypingWhileEditingDoesNotNavigate(t *testing.T) {
	m := send(newTestModel(t), enter, typed("q"), typed("j"))

	assert.True(t, m.editing)
	assert.Equal(t, fieldStartMonth, m.cursor)
	assert.Equal(t, "qj", m.input.Value())
}

func TestCursorWraps(t *testing.T) {
	m := send(newTestModel(t), up)
	assert.Equal(t, fieldAnnual, m.cursor)

	m = send(m, down)
	assert.Equal(t, fieldStartMonth, m.cursor)
}

func TestIntervalAndPaging(t *testing.T) {
	m := send(newTestModel(t), typed("i"))
	assert.Equal(t, 6, m.every)

	m = send(m, typed("i"), typed("i"))
	assert.Equal(t, 1, m.every)
	assert.Len(t, m.tableRows(), 361)

	m = send(m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, m.visibleRows(), m.offset)

	for i := 0; i < 100; i++ {
		m = send(m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, m.maxOffset(), m.offset)

	m = send(m, typed("i"))
	assert.Equal(t, 12, m.every)
	assert.Zero(t, m.offset)
}

func TestWindowResize(t *testing.T) {
	m := send(newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 60, m.height)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(typed("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	view := newTestModel(t).View()

	for _, want := range []string{
		"FIRE Drawdown Calculator",
		"Start month",
		"2026-01",
		"2055-12",
		"360",
		"Annual withdrawal",
		"12000.00",
		"Final balance",
		"30y 0m (depleted Dec 2055)",
		"Dec 2026",
	} {
		assert.Contains(t, view, want)
	}
}

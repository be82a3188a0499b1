package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/fire-calculator/internal/output"
)

// View renders the current state of the calculator
func (m Model) View() string {
	sections := []string{
		TitleStyle.Render("FIRE Drawdown Calculator"),
		m.renderFields(),
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("✗ "+m.err.Error()))
	}
	sections = append(sections,
		m.renderSummary(),
		m.renderTable(),
		m.renderHelp(),
	)
	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderFields() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		f := fields[i]
		label, value := LabelStyle, ValueStyle
		marker := "  "
		if i == m.cursor {
			label, value = SelectedLabelStyle, SelectedValueStyle
			marker = "> "
		}
		v := value.Render(f.value(m.calc))
		if i == m.cursor && m.editing {
			v = m.input.View()
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, label.Render(f.label), v)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderSummary() string {
	s := m.summary
	if len(m.projection) == 0 {
		return PanelStyle.Render("No starting capital: nothing to project.")
	}

	final := MetricPositiveStyle
	if !s.FinalBalance.IsPositive() {
		final = MetricNegativeStyle
	}
	runway := output.FormatRunway(s.MonthsOfRunway) + " (not depleted)"
	if s.DepletionMonth != nil {
		runway = fmt.Sprintf("%s (depleted %s)", output.FormatRunway(s.MonthsOfRunway), output.FormatMonth(*s.DepletionMonth))
	}

	lines := []string{
		fmt.Sprintf("%s %s", LabelStyle.Render("Final balance"), final.Render(output.FormatAmount(s.FinalBalance))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Total withdrawn"), ValueStyle.Render(output.FormatAmount(s.TotalWithdrawn))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Runway"), ValueStyle.Render(runway)),
		fmt.Sprintf("%s %s / month", LabelStyle.Render("Sustainable"), ValueStyle.Render(output.FormatAmount(s.SustainableMonthly))),
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTable() string {
	rows := m.tableRows()
	if len(rows) == 0 {
		return ""
	}
	end := m.offset + m.visibleRows()
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%6s  %-8s  %20s", "Month", "Date", "Balance")))
	b.WriteString(fmt.Sprintf("   every %d mo, rows %d-%d of %d", m.every, m.offset+1, end, len(rows)))
	for _, i := range rows[m.offset:end] {
		p := m.projection[i]
		style := ValueStyle
		if p.Balance.IsNegative() {
			style = MetricNegativeStyle
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%6d  %-8s  ", i, output.FormatMonth(p.Month)))
		b.WriteString(style.Render(fmt.Sprintf("%20s", output.FormatAmount(p.Balance))))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	if m.editing {
		return HelpStyle.Render("enter apply • esc cancel • empty keeps the current value")
	}
	bindings := []key.Binding{keys.Up, keys.Down, keys.Edit, keys.Interval, keys.Quit}
	parts := make([]string, 0, len(bindings)+1)
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "[/] page")
	return HelpStyle.Render(strings.Join(parts, " • "))
}

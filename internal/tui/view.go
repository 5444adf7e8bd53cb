package tui

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spendable-dev/spendable/internal/render"
	"github.com/spendable-dev/spendable/internal/status"
)

const (
	nameWidth   = 30
	amountWidth = 12
)

// Styles control the explore surface's colors.
type Styles struct {
	Headline lipgloss.Style
	Negative lipgloss.Style
	Zero     lipgloss.Style
	Low      lipgloss.Style
	Healthy  lipgloss.Style
	Section  lipgloss.Style
	Cursor   lipgloss.Style
	Muted    lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Headline: lipgloss.NewStyle().Bold(true),
		Negative: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f")),
		Zero:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bbbbbb")),
		Low:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d29b1d")),
		Healthy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00af5f")),
		Section:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
	}
}

func (s Styles) status(st status.Status) lipgloss.Style {
	switch st {
	case status.Negative:
		return s.Negative
	case status.Zero:
		return s.Zero
	case status.Low:
		return s.Low
	default:
		return s.Healthy
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	st := status.For(m.result.Available, m.lowBelow)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n",
		m.styles.Headline.Render("Available to allocate:"),
		m.styles.status(st).Render(fmt.Sprintf("%s (%s)", render.Amount(m.result.Available, m.currency), st)))

	b.WriteString(m.styles.Section.Render("Cash accounts") + "\n")
	if len(m.accounts) == 0 {
		b.WriteString(m.styles.Muted.Render("  no enabled cash accounts in this snapshot") + "\n")
	}
	for i, a := range m.accounts {
		box := "[ ]"
		if m.selected[a.ID] {
			box = "[x]"
		}
		text := fmt.Sprintf("%s %-*s %*s", box,
			nameWidth, truncStr(html.UnescapeString(a.Name), nameWidth),
			amountWidth, render.Amount(a.Balance.Round(0).IntPart(), m.currency))
		b.WriteString(m.row(i, text))
	}

	b.WriteString("\n" + m.styles.Section.Render("Options") + "\n")

	incomeBox := "[ ]"
	if m.includeExpectedIncome {
		incomeBox = "[x]"
	}
	b.WriteString(m.row(m.expectedIncomeRow(), fmt.Sprintf("%s %-*s %*s", incomeBox,
		nameWidth, "Include expected income",
		amountWidth, render.Amount(m.result.Breakdown.ExpectedIncome, m.currency))))

	if m.editing {
		b.WriteString(m.row(m.bufferRow(), fmt.Sprintf("    %-*s %s",
			nameWidth, "Buffer", m.input.View())))
	} else {
		b.WriteString(m.row(m.bufferRow(), fmt.Sprintf("    %-*s %*s",
			nameWidth, "Buffer",
			amountWidth, render.Amount(m.result.Breakdown.Buffer, m.currency))))
	}

	b.WriteString("\n" + m.styles.Muted.Render(m.formulaLine()) + "\n")
	b.WriteString("\n" + m.styles.Muted.Render("[space] toggle  [enter] edit buffer  [e] expected income  [a/n] all/none  [q] quit") + "\n")

	return b.String()
}

func (m Model) row(idx int, text string) string {
	if idx == m.cursor && !m.editing {
		return m.styles.Cursor.Render("▸ "+text) + "\n"
	}
	return "  " + text + "\n"
}

// formulaLine shows the totals exactly as they enter the formula.
func (m Model) formulaLine() string {
	bd := m.result.Breakdown
	parts := []string{"cash " + render.Amount(bd.Cash, m.currency)}
	if m.includeExpectedIncome {
		parts = append(parts, "+ expected "+render.Amount(bd.ExpectedIncome, m.currency))
	}
	parts = append(parts,
		"- cards "+render.Amount(bd.CreditCards, m.currency),
		"- budget "+render.Amount(bd.UnspentBudget, m.currency),
		"- goals "+render.Amount(bd.Goals, m.currency),
		"- stash "+render.Amount(bd.Stash, m.currency),
	)
	if bd.Buffer != 0 {
		parts = append(parts, "- buffer "+render.Amount(bd.Buffer, m.currency))
	}
	return strings.Join(parts, " ")
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

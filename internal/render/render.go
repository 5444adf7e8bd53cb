// Package render draws a calculation result as a terminal report.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"

	"github.com/spendable-dev/spendable/internal/calc"
	"github.com/spendable-dev/spendable/internal/status"
)

const (
	labelWidth  = 26
	amountWidth = 14
)

// Options control how a report is drawn.
type Options struct {
	Currency string // ISO 4217 code used for amount display
	LowBelow int64  // threshold under which the headline reads as low
}

// Styles control the report's colors.
type Styles struct {
	Negative lipgloss.Style
	Zero     lipgloss.Style
	Low      lipgloss.Style
	Healthy  lipgloss.Style
	Section  lipgloss.Style
	Item     lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Negative: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f")),
		Zero:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bbbbbb")),
		Low:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d29b1d")),
		Healthy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00af5f")),
		Section:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
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

// Report writes a styled breakdown of res to w. Bucket headers carry the
// sign with which they enter the formula; line items show the magnitudes
// the headers were summed from.
func Report(w io.Writer, res calc.Result, opts Options) error {
	styles := defaultStyles()
	st := status.For(res.Available, opts.LowBelow)

	var b strings.Builder
	fmt.Fprintf(&b, "Available to allocate: %s (%s)\n\n",
		styles.status(st).Render(Amount(res.Available, opts.Currency)), st)

	section(&b, styles, "Cash", res.Breakdown.Cash, res.Detailed.CashAccounts, opts.Currency)
	if res.IncludesExpectedIncome {
		section(&b, styles, "Expected income", res.Breakdown.ExpectedIncome, nil, opts.Currency)
	}
	section(&b, styles, "Credit cards", -res.Breakdown.CreditCards, res.Detailed.CreditCards, opts.Currency)
	section(&b, styles, "Unspent budget", -res.Breakdown.UnspentBudget, res.Detailed.UnspentBudget, opts.Currency)
	section(&b, styles, "Goals", -res.Breakdown.Goals, res.Detailed.Goals, opts.Currency)
	section(&b, styles, "Stash", -res.Breakdown.Stash, res.Detailed.Stash, opts.Currency)
	if res.Breakdown.Buffer != 0 {
		section(&b, styles, "Buffer", -res.Breakdown.Buffer, nil, opts.Currency)
	}

	if len(res.Detailed.LeftToBudget) > 0 {
		var total int64
		for _, it := range res.Detailed.LeftToBudget {
			total += it.Amount
		}
		b.WriteString("\n")
		section(&b, styles, "Left to budget", total, res.Detailed.LeftToBudget, opts.Currency)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the result object verbatim for programmatic consumers.
func JSON(w io.Writer, res calc.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// section writes one bucket header and its line items. Padding happens
// before styling so ANSI sequences cannot skew the columns.
func section(b *strings.Builder, styles Styles, label string, total int64, items []calc.LineItem, currency string) {
	fmt.Fprintf(b, "%s %s\n",
		styles.Section.Render(fmt.Sprintf("%-*s", labelWidth, label)),
		fmt.Sprintf("%*s", amountWidth, Amount(total, currency)))
	for _, it := range items {
		fmt.Fprintf(b, "  %s %s\n",
			styles.Item.Render(fmt.Sprintf("%-*s", labelWidth-2, clip(it.Name, labelWidth-2))),
			styles.Item.Render(fmt.Sprintf("%*s", amountWidth, Amount(it.Amount, currency))))
	}
}

// Amount formats a whole-unit amount in the given currency. Unknown codes
// fall back to USD rather than failing a report.
func Amount(v int64, code string) string {
	c := money.GetCurrency(code)
	if c == nil {
		c = money.GetCurrency(money.USD)
	}
	minor := v
	for i := 0; i < c.Fraction; i++ {
		minor *= 10
	}
	return money.New(minor, c.Code).Display()
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// Package tui provides the interactive explore surface: check cash accounts
// on and off, toggle expected income, adjust the buffer, and watch the
// available figure recompute on every keystroke.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/spendable-dev/spendable/internal/calc"
	"github.com/spendable-dev/spendable/internal/classify"
	"github.com/spendable-dev/spendable/internal/config"
	"github.com/spendable-dev/spendable/internal/model"
)

// Model is the root Bubble Tea model for explore.
type Model struct {
	snap model.Snapshot

	accounts []model.Account // enabled cash accounts, snapshot order
	selected map[string]bool

	includeExpectedIncome bool
	buffer                decimal.Decimal

	cursor  int
	editing bool
	input   textinput.Model

	result calc.Result

	currency string
	lowBelow int64
	styles   Styles

	width  int
	height int
}

// New builds the explore model. Checkboxes start from the configured
// selection; an absent selection checks every enabled cash account.
func New(snap model.Snapshot, cfg *config.Config) Model {
	var accounts []model.Account
	for _, a := range snap.Accounts {
		if a.Enabled && classify.Classify(a.Type).IsCash {
			accounts = append(accounts, a)
		}
	}

	selected := make(map[string]bool, len(accounts))
	if cfg.Options.SelectedAccounts == nil {
		for _, a := range accounts {
			selected[a.ID] = true
		}
	} else {
		chosen := make(map[string]bool, len(cfg.Options.SelectedAccounts))
		for _, id := range cfg.Options.SelectedAccounts {
			chosen[id] = true
		}
		for _, a := range accounts {
			selected[a.ID] = chosen[a.ID]
		}
	}

	m := Model{
		snap:                  snap,
		accounts:              accounts,
		selected:              selected,
		includeExpectedIncome: cfg.Options.IncludeExpectedIncome,
		buffer:                decimal.NewFromFloat(cfg.Options.Buffer),
		currency:              cfg.Currency,
		lowBelow:              cfg.Thresholds.Low,
		styles:                defaultStyles(),
	}
	m.recompute()
	return m
}

// Run starts the explore program on the caller's terminal.
func Run(snap model.Snapshot, cfg *config.Config) error {
	if _, err := tea.NewProgram(New(snap, cfg), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running explore ui: %w", err)
	}
	return nil
}

// options translates the checkbox state into engine options. The selection
// is always explicit here: unchecking everything means nothing, not all.
func (m Model) options() calc.Options {
	ids := make([]string, 0, len(m.accounts))
	for _, a := range m.accounts {
		if m.selected[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return calc.Options{
		IncludeExpectedIncome:  m.includeExpectedIncome,
		SelectedCashAccountIDs: ids,
		Buffer:                 m.buffer,
	}
}

func (m *Model) recompute() {
	m.result = calc.Calculate(m.snap, m.options())
}

func (m Model) rowCount() int          { return len(m.accounts) + 2 }
func (m Model) expectedIncomeRow() int { return len(m.accounts) }
func (m Model) bufferRow() int         { return len(m.accounts) + 1 }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateBufferInput(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case " ", "x":
			m.toggle(m.cursor)
		case "enter":
			if m.cursor == m.bufferRow() {
				return m.startBufferEdit()
			}
			m.toggle(m.cursor)
		case "a":
			for _, a := range m.accounts {
				m.selected[a.ID] = true
			}
			m.recompute()
		case "n":
			for _, a := range m.accounts {
				m.selected[a.ID] = false
			}
			m.recompute()
		case "e":
			m.includeExpectedIncome = !m.includeExpectedIncome
			m.recompute()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) toggle(row int) {
	switch {
	case row < len(m.accounts):
		id := m.accounts[row].ID
		m.selected[id] = !m.selected[id]
	case row == m.expectedIncomeRow():
		m.includeExpectedIncome = !m.includeExpectedIncome
	default:
		return // the buffer row edits, it does not toggle
	}
	m.recompute()
}

func (m Model) startBufferEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 12
	ti.Width = 12
	if !m.buffer.IsZero() {
		ti.SetValue(m.buffer.String())
	}
	ti.Focus()
	m.input = ti
	m.editing = true
	return m, ti.Cursor.BlinkCmd()
}

func (m Model) updateBufferInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		if val == "" {
			m.buffer = decimal.Zero
		} else if d, err := decimal.NewFromString(val); err == nil && !d.IsNegative() {
			m.buffer = d
		}
		m.editing = false
		m.recompute()
		return m, nil
	case "esc":
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

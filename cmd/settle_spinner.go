package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settleDoneMsg struct {
	err error
}

type settleSpinnerModel struct {
	spinner spinner.Model
	label   string
	settle  tea.Cmd
	err     error
	done    bool
}

func newSettleSpinnerModel(label string, settle tea.Cmd) settleSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("36"))),
	)

	return settleSpinnerModel{
		spinner: s,
		label:   label,
		settle:  settle,
	}
}

func (m settleSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.settle)
}

func (m settleSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case settleDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m settleSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runSettleSpinner runs settle while a spinner is drawn on output. The error
// returned is the one settle produced.
func runSettleSpinner(ctx context.Context, output io.Writer, label string, settle func(context.Context) error) error {
	settleCmd := func() tea.Msg {
		return settleDoneMsg{err: settle(ctx)}
	}

	p := tea.NewProgram(
		newSettleSpinnerModel(label, settleCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(settleSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

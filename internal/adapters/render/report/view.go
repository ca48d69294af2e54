package report

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bnema/poolctl/internal/adapters/metrics/prom"
	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

type Options struct {
	// Decimals scales raw integer amounts for display; 0 prints them as is.
	Decimals int32
	Quote    bool
}

func RenderSession(result application.SessionResult, opts Options) (string, error) {
	return run(func(s styles) string { return sessionView(result, opts, s) })
}

func RenderPool(meta application.PoolMeta) (string, error) {
	return run(func(s styles) string { return poolView(meta, s) })
}

func RenderBalances(balances application.Balances, opts Options) (string, error) {
	return run(func(s styles) string { return balancesView(balances, opts, s) })
}

func RenderMetrics(samples []prom.Sample) (string, error) {
	return run(func(s styles) string { return metricsView(samples, s) })
}

func sessionView(result application.SessionResult, opts Options, s styles) string {
	title := "Session " + string(result.SessionID)
	if opts.Quote {
		title = "Quote"
	}

	lines := []string{
		s.title.Render(title),
		field(s, "state", stateLabel(result.State, opts.Quote, s)),
		field(s, "delta", result.Delta.Hex()),
		field(s, "amount0", signed(result.Amount0, opts.Decimals, s)),
		field(s, "amount1", signed(result.Amount1, opts.Decimals, s)),
	}
	if result.Elapsed > 0 {
		lines = append(lines, field(s, "elapsed", result.Elapsed.String()))
	}

	if opts.Quote {
		lines = append(lines, field(s, "required native", formatUint(result.NativeValue, opts.Decimals)))
	} else if result.NativeValue != nil && !result.NativeValue.IsZero() {
		lines = append(lines,
			field(s, "native sent", formatUint(result.NativeValue, opts.Decimals)),
			field(s, "native refunded", formatUint(result.NativeRefund, opts.Decimals)),
		)
	}

	lines = append(lines, s.section.Render(instructionsView(result.Instructions, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func instructionsView(instructions []domain.SettlementInstruction, opts Options, s styles) string {
	if len(instructions) == 0 {
		return s.empty.Render("No settlement needed.")
	}

	rows := make([]table.Row, 0, len(instructions))
	for i, instruction := range instructions {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			instruction.Strategy.String(),
			instruction.Direction.String(),
			instruction.Asset.String(),
			formatUint(instruction.Magnitude, opts.Decimals),
		})
	}

	return newTable([]table.Column{
		{Title: "#", Width: 2},
		{Title: "strategy", Width: 14},
		{Title: "direction", Width: 15},
		{Title: "asset", Width: 42},
		{Title: "amount", Width: 40},
	}, rows, s)
}

func poolView(meta application.PoolMeta, s styles) string {
	lines := []string{
		s.title.Render("Pool " + meta.ID.Hex()),
		field(s, "currency0", meta.Key.Currency0.String()),
		field(s, "currency1", meta.Key.Currency1.String()),
		field(s, "fee", fmt.Sprintf("%d (%s%%)", meta.Key.Fee, decimal.New(int64(meta.Key.Fee), -4).String())),
		field(s, "tick spacing", strconv.Itoa(int(meta.Key.TickSpacing))),
		field(s, "sqrtPriceX96", formatBig(meta.SqrtPriceX96, 0)),
		field(s, "tick", strconv.Itoa(int(meta.Tick))),
		field(s, "liquidity", formatBig(meta.Liquidity, 0)),
	}
	if meta.Key.Hooks != (common.Address{}) {
		lines = append(lines, field(s, "hooks", meta.Key.Hooks.Hex()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func balancesView(balances application.Balances, opts Options, s styles) string {
	lines := []string{
		s.title.Render("Balances"),
		s.header.Render("holder: " + balances.Holder.Hex()),
	}

	if len(balances.Holdings) == 0 {
		lines = append(lines, s.empty.Render("No assets requested."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]table.Row, 0, len(balances.Holdings))
	for _, holding := range balances.Holdings {
		rows = append(rows, table.Row{
			holding.Asset.String(),
			formatUint(holding.External, opts.Decimals),
			formatUint(holding.Claims, opts.Decimals),
		})
	}

	lines = append(lines, s.section.Render(newTable([]table.Column{
		{Title: "asset", Width: 42},
		{Title: "balance", Width: 40},
		{Title: "claims", Width: 40},
	}, rows, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func metricsView(samples []prom.Sample, s styles) string {
	lines := []string{s.title.Render("Metrics")}
	if len(samples) == 0 {
		lines = append(lines, s.empty.Render("No samples."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, sample := range samples {
		lines = append(lines, fmt.Sprintf("%s%s %s",
			s.key.Render(sample.Name),
			s.header.Render(sample.Labels),
			s.value.Render(strconv.FormatFloat(sample.Value, 'g', -1, 64)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func newTable(columns []table.Column, rows []table.Row, s styles) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(s.table),
	)

	return strings.TrimRight(t.View(), "\n")
}

func field(s styles, key, value string) string {
	return s.key.Render(key+":") + " " + value
}

func stateLabel(state domain.SessionState, quote bool, s styles) string {
	if quote {
		return s.value.Render("dry run (reverted)")
	}
	switch state {
	case domain.SessionClosed:
		return s.closed.Render(state.String())
	case domain.SessionAborted:
		return s.aborted.Render(state.String())
	default:
		return s.value.Render(state.String())
	}
}

func signed(amount domain.Amount, decimals int32, s styles) string {
	text := formatBig(amount.Big(), decimals)
	switch amount.Sign() {
	case -1:
		return s.negative.Render(text)
	case 1:
		return s.positive.Render("+" + text)
	default:
		return s.value.Render(text)
	}
}

func formatUint(value *uint256.Int, decimals int32) string {
	if value == nil {
		return "0"
	}
	return formatBig(value.ToBig(), decimals)
}

func formatBig(value *big.Int, decimals int32) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -decimals).String()
}

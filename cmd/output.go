package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/poolctl/internal/adapters/render/report"
	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

type instructionOutput struct {
	Strategy  string `json:"strategy"`
	Direction string `json:"direction"`
	Asset     string `json:"asset"`
	Amount    string `json:"amount"`
}

type sessionOutput struct {
	SessionID    string              `json:"session_id,omitempty"`
	State        string              `json:"state"`
	PackedDelta  string              `json:"packed_delta"`
	Amount0      string              `json:"amount0"`
	Amount1      string              `json:"amount1"`
	Instructions []instructionOutput `json:"instructions"`
	NativeValue  string              `json:"native_value,omitempty"`
	NativeRefund string              `json:"native_refund,omitempty"`
	ElapsedMs    float64             `json:"elapsed_ms,omitempty"`
}

type poolOutput struct {
	ID           string `json:"id"`
	Currency0    string `json:"currency0"`
	Currency1    string `json:"currency1"`
	Fee          uint32 `json:"fee"`
	TickSpacing  int32  `json:"tick_spacing"`
	Hooks        string `json:"hooks"`
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	Tick         int32  `json:"tick"`
	Liquidity    string `json:"liquidity"`
}

type holdingOutput struct {
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
	Claims  string `json:"claims"`
}

type balancesOutput struct {
	Holder   string          `json:"holder"`
	Holdings []holdingOutput `json:"holdings"`
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeSession(cmd *cobra.Command, app *app, result application.SessionResult, quote bool) error {
	if app.opts.asJSON {
		return writeJSON(cmd, toSessionOutput(result))
	}
	rendered, err := report.RenderSession(result, report.Options{Decimals: app.cfg.Decimals, Quote: quote})
	return writeRendered(cmd, rendered, err)
}

func writePool(cmd *cobra.Command, app *app, meta application.PoolMeta) error {
	if app.opts.asJSON {
		return writeJSON(cmd, poolOutput{
			ID:           meta.ID.Hex(),
			Currency0:    meta.Key.Currency0.String(),
			Currency1:    meta.Key.Currency1.String(),
			Fee:          meta.Key.Fee,
			TickSpacing:  meta.Key.TickSpacing,
			Hooks:        meta.Key.Hooks.Hex(),
			SqrtPriceX96: meta.SqrtPriceX96.String(),
			Tick:         meta.Tick,
			Liquidity:    meta.Liquidity.String(),
		})
	}
	rendered, err := report.RenderPool(meta)
	return writeRendered(cmd, rendered, err)
}

func writeBalances(cmd *cobra.Command, app *app, balances application.Balances) error {
	if app.opts.asJSON {
		out := balancesOutput{Holder: balances.Holder.Hex(), Holdings: []holdingOutput{}}
		for _, holding := range balances.Holdings {
			out.Holdings = append(out.Holdings, holdingOutput{
				Asset:   holding.Asset.String(),
				Balance: decString(holding.External),
				Claims:  decString(holding.Claims),
			})
		}
		return writeJSON(cmd, out)
	}
	rendered, err := report.RenderBalances(balances, report.Options{Decimals: app.cfg.Decimals})
	return writeRendered(cmd, rendered, err)
}

func toSessionOutput(result application.SessionResult) sessionOutput {
	out := sessionOutput{
		SessionID:    string(result.SessionID),
		State:        result.State.String(),
		PackedDelta:  result.Delta.Hex(),
		Amount0:      result.Amount0.String(),
		Amount1:      result.Amount1.String(),
		Instructions: make([]instructionOutput, 0, len(result.Instructions)),
		NativeValue:  decString(result.NativeValue),
		NativeRefund: decString(result.NativeRefund),
		ElapsedMs:    float64(result.Elapsed.Microseconds()) / 1000,
	}
	for _, instruction := range result.Instructions {
		out.Instructions = append(out.Instructions, toInstructionOutput(instruction))
	}
	return out
}

func toInstructionOutput(instruction domain.SettlementInstruction) instructionOutput {
	return instructionOutput{
		Strategy:  instruction.Strategy.String(),
		Direction: instruction.Direction.String(),
		Asset:     instruction.Asset.String(),
		Amount:    decString(instruction.Magnitude),
	}
}

func decString(value *uint256.Int) string {
	if value == nil {
		return ""
	}
	return value.Dec()
}

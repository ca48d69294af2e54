package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
)

// ReplayJournal feeds recorded session outcomes into metrics and returns how
// many sessions it replayed. Instructions count only for closed sessions:
// an aborted record lists its plan, not what ran before the abort.
func ReplayJournal(ctx context.Context, journal ports.Journal, metrics ports.SettlementMetrics) (int, error) {
	records, err := journal.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list journal: %w", err)
	}

	replayed := 0
	for i, record := range records {
		if record.Kind != domain.RecordSession {
			continue
		}
		state, err := domain.ParseSessionState(record.State)
		if err != nil {
			return replayed, fmt.Errorf("journal record %d: %w", i+1, err)
		}
		if !state.Terminal() {
			continue
		}

		if state == domain.SessionClosed {
			for _, instruction := range record.Instructions {
				name, _, _ := strings.Cut(instruction, " ")
				strategy, err := domain.ParseStrategy(name)
				if err != nil {
					return replayed, fmt.Errorf("journal record %d: %w", i+1, err)
				}
				metrics.InstructionExecuted(strategy)
			}
		}

		metrics.SessionEnded(state, time.Duration(record.DurationMs*float64(time.Millisecond)))
		replayed++
	}

	return replayed, nil
}

package ports

import (
	"time"

	"github.com/bnema/poolctl/internal/domain"
)

type SettlementMetrics interface {
	SessionEnded(state domain.SessionState, elapsed time.Duration)
	InstructionExecuted(strategy domain.Strategy)
}

type NopMetrics struct{}

func (NopMetrics) SessionEnded(domain.SessionState, time.Duration) {}

func (NopMetrics) InstructionExecuted(domain.Strategy) {}

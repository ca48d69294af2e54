package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayJournalCountsTerminalSessions(t *testing.T) {
	journal := mocks.NewMockJournal(t)
	journal.EXPECT().List(mockAnyContext()).Return([]domain.Record{
		{Kind: domain.RecordPoolCreated, PoolID: "0x01"},
		{Kind: domain.RecordSession, State: "closed", DurationMs: 1.5, Instructions: []string{
			"direct_settle native 100",
			"claim_mint 0x1000000000000000000000000000000000000001 7",
		}},
		{Kind: domain.RecordSession, State: "aborted", Instructions: []string{"direct_settle native 100"}},
		{Kind: domain.RecordSession, State: "uninitialized", Error: "config"},
	}, nil)

	metrics := &recordingMetrics{}
	replayed, err := ReplayJournal(context.Background(), journal, metrics)
	require.NoError(t, err)

	assert.Equal(t, 2, replayed)
	assert.Equal(t, []domain.SessionState{domain.SessionClosed, domain.SessionAborted}, metrics.ended)
	assert.Equal(t, []domain.Strategy{domain.StrategyDirectSettle, domain.StrategyClaimMint}, metrics.instructions)
}

func TestReplayJournalRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		record domain.Record
	}{
		{name: "state", record: domain.Record{Kind: domain.RecordSession, State: "pending"}},
		{name: "strategy", record: domain.Record{Kind: domain.RecordSession, State: "closed", Instructions: []string{"swap native 1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := mocks.NewMockJournal(t)
			journal.EXPECT().List(mockAnyContext()).Return([]domain.Record{tt.record}, nil)

			_, err := ReplayJournal(context.Background(), journal, &recordingMetrics{})
			require.ErrorIs(t, err, domain.ErrConfig)
			assert.ErrorContains(t, err, "journal record 1")
		})
	}
}

func TestReplayJournalListError(t *testing.T) {
	journal := mocks.NewMockJournal(t)
	listErr := errors.New("disk gone")
	journal.EXPECT().List(mockAnyContext()).Return(nil, listErr)

	_, err := ReplayJournal(context.Background(), journal, &recordingMetrics{})
	require.ErrorIs(t, err, listErr)
}

package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type SessionID string

type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionOpen
	SessionSettling
	SessionClosed
	SessionAborted
)

func (s SessionState) String() string {
	switch s {
	case SessionOpen:
		return "open"
	case SessionSettling:
		return "settling"
	case SessionClosed:
		return "closed"
	case SessionAborted:
		return "aborted"
	default:
		return "uninitialized"
	}
}

func ParseSessionState(name string) (SessionState, error) {
	for _, s := range []SessionState{SessionUninitialized, SessionOpen, SessionSettling, SessionClosed, SessionAborted} {
		if s.String() == name {
			return s, nil
		}
	}
	return SessionUninitialized, fmt.Errorf("%w: unknown session state %q", ErrConfig, name)
}

func (s SessionState) Terminal() bool {
	return s == SessionClosed || s == SessionAborted
}

// CanTransition reports whether the state machine permits s -> to.
func (s SessionState) CanTransition(to SessionState) bool {
	switch s {
	case SessionUninitialized:
		return to == SessionOpen
	case SessionOpen:
		return to == SessionSettling || to == SessionAborted
	case SessionSettling:
		return to == SessionClosed || to == SessionAborted
	default:
		return false
	}
}

// AssetDelta is one entry of a session's ordered delta list.
type AssetDelta struct {
	Asset Asset
	Delta Amount
}

type Session struct {
	ID       SessionID
	Caller   common.Address
	State    SessionState
	Deltas   []AssetDelta
	OpenedAt time.Time
	EndedAt  time.Time
}

func NewSession(caller common.Address, now time.Time) Session {
	return Session{
		ID:       SessionID(uuid.NewString()),
		Caller:   caller,
		State:    SessionOpen,
		OpenedAt: now,
	}
}

func (s *Session) Transition(to SessionState) error {
	if !s.State.CanTransition(to) {
		return fmt.Errorf("session %s: illegal transition %s -> %s", s.ID, s.State, to)
	}
	s.State = to
	return nil
}

// Apply adds change to the running delta of asset, creating the entry on
// first use so the list keeps first-touch order.
func (s *Session) Apply(asset Asset, change Amount) error {
	for i := range s.Deltas {
		if s.Deltas[i].Asset != asset {
			continue
		}
		sum, err := s.Deltas[i].Delta.Add(change)
		if err != nil {
			return fmt.Errorf("apply delta for %s: %w", asset, err)
		}
		s.Deltas[i].Delta = sum
		return nil
	}

	s.Deltas = append(s.Deltas, AssetDelta{Asset: asset, Delta: change})
	return nil
}

func (s Session) DeltaOf(asset Asset) Amount {
	for _, entry := range s.Deltas {
		if entry.Asset == asset {
			return entry.Delta
		}
	}
	return Amount{}
}

// Residuals lists every asset whose running delta is nonzero.
func (s Session) Residuals() []Residual {
	var residuals []Residual
	for _, entry := range s.Deltas {
		if entry.Delta.IsZero() {
			continue
		}
		residuals = append(residuals, Residual{Asset: entry.Asset, Delta: entry.Delta})
	}
	return residuals
}

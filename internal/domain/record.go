package domain

import "time"

type RecordKind string

const (
	RecordSession     RecordKind = "session"
	RecordPoolCreated RecordKind = "pool_created"
)

// Record is one line of the operations journal.
type Record struct {
	Time         time.Time  `json:"time"`
	Kind         RecordKind `json:"kind"`
	Network      string     `json:"network,omitempty"`
	Manager      string     `json:"manager,omitempty"`
	PoolID       string     `json:"pool_id,omitempty"`
	Token0       string     `json:"token0,omitempty"`
	Token1       string     `json:"token1,omitempty"`
	Fee          uint32     `json:"fee,omitempty"`
	TickSpacing  int32      `json:"tick_spacing,omitempty"`
	SqrtPriceX96 string     `json:"sqrt_price_x96,omitempty"`
	SessionID    string     `json:"session_id,omitempty"`
	Caller       string     `json:"caller,omitempty"`
	State        string     `json:"state,omitempty"`
	PackedDelta  string     `json:"packed_delta,omitempty"`
	Amount0      string     `json:"amount0,omitempty"`
	Amount1      string     `json:"amount1,omitempty"`
	Instructions []string   `json:"instructions,omitempty"`
	NativeValue  string     `json:"native_value,omitempty"`
	DurationMs   float64    `json:"duration_ms,omitempty"`
	Error        string     `json:"error,omitempty"`
}

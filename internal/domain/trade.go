package domain

import "time"

// Conventional buy/sell indicator values. The indicator is stored as
// given and never validated, so any byte may appear in a Trade.
const (
	SideBuy  byte = 'B'
	SideSell byte = 'S'
)

// Trade represents a single executed trade. All fields are set when the
// trade is recorded and never modified afterwards.
type Trade struct {
	TradeID    string
	RecordedAt time.Time
	Quantity   int64
	Side       byte  // buy/sell indicator, conventionally 'B' or 'S'
	Price      int64 // caller-defined currency unit (e.g. cents)
}

package store

import (
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/srikanthkonagalla/stockmetrics/internal/domain"
)

// tradeEntry keys a trade by its timestamp plus a monotonically
// increasing sequence number, so trades sharing a timestamp keep their
// insertion order.
type tradeEntry struct {
	at    time.Time
	seq   uint64
	trade *domain.Trade
}

// tradeLess orders entries by timestamp ascending, then by insertion
// sequence. Min() is the oldest trade.
func tradeLess(a, b tradeEntry) bool {
	if !a.at.Equal(b.at) {
		return a.at.Before(b.at)
	}
	return a.seq < b.seq
}

// TradeStore is a thread-safe, append-only in-memory store of trades
// ordered by timestamp. A B-tree keyed by (timestamp, sequence) gives
// O(log n) lower-bound positioning for windowed scans plus forward
// iteration of the tail.
type TradeStore struct {
	mu     sync.RWMutex
	trades *btree.BTreeG[tradeEntry]
	seq    uint64
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	const degree = 32
	return &TradeStore{
		trades: btree.NewG[tradeEntry](degree, tradeLess),
	}
}

// Insert adds a trade keyed by its RecordedAt timestamp. The store is
// append-only: trades are never updated or removed.
func (s *TradeStore) Insert(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.trades.ReplaceOrInsert(tradeEntry{at: t.RecordedAt, seq: s.seq, trade: t})
}

// Since returns all trades recorded at or after from, oldest first.
// The scan is bounded only below, so trades with future timestamps are
// included. Returns an empty slice when nothing qualifies.
func (s *TradeStore) Since(from time.Time) []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*domain.Trade{}
	// Sequence numbers start at 1, so a zero-seq pivot sorts before
	// every real entry sharing the same timestamp.
	s.trades.AscendGreaterOrEqual(tradeEntry{at: from}, func(e tradeEntry) bool {
		result = append(result, e.trade)
		return true
	})
	return result
}

// All returns every stored trade, oldest first.
func (s *TradeStore) All() []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Trade, 0, s.trades.Len())
	s.trades.Ascend(func(e tradeEntry) bool {
		result = append(result, e.trade)
		return true
	})
	return result
}

// Len returns the number of stored trades.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades.Len()
}

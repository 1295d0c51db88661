package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/srikanthkonagalla/stockmetrics/internal/domain"
	"github.com/srikanthkonagalla/stockmetrics/internal/store"
)

// VWAPResult represents the outcome of a volume-weighted price query.
type VWAPResult struct {
	Price          float64
	Window         time.Duration
	TradesInWindow int
}

// GeometricMeanResult represents the outcome of a geometric mean query.
type GeometricMeanResult struct {
	Price      float64
	TradeCount int
}

// MetricsService records trades and computes aggregate stock metrics
// over the recorded history.
type MetricsService struct {
	trades     *store.TradeStore
	vwapWindow time.Duration
	now        func() time.Time // stubbed in tests
}

// NewMetricsService creates a MetricsService computing VWAP over the
// given window.
func NewMetricsService(trades *store.TradeStore, vwapWindow time.Duration) *MetricsService {
	return &MetricsService{
		trades:     trades,
		vwapWindow: vwapWindow,
		now:        time.Now,
	}
}

// RecordTrade parses the timestamp, creates a trade, and stores it.
// The timestamp must match domain.TimestampLayout; anything else is
// rejected with a validation error. Quantity, side, and price are
// stored as given, without validation.
func (s *MetricsService) RecordTrade(timestamp string, quantity int64, side byte, price int64) (*domain.Trade, error) {
	at, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	trade := &domain.Trade{
		TradeID:    uuid.NewString(),
		RecordedAt: at,
		Quantity:   quantity,
		Side:       side,
		Price:      price,
	}
	s.trades.Insert(trade)
	return trade, nil
}

// ListTrades returns all recorded trades in chronological order.
func (s *MetricsService) ListTrades() []*domain.Trade {
	return s.trades.All()
}

// VolumeWeightedPrice computes the volume-weighted average price over
// the window ending at the current wall-clock time. "Now" is sampled
// fresh on each call. The scan is bounded only below, so trades with
// timestamps at or after now also count. Returns
// domain.ErrNoTradesFound when the window holds no volume.
func (s *MetricsService) VolumeWeightedPrice() (*VWAPResult, error) {
	windowStart := s.now().Add(-s.vwapWindow)

	var sumQty int64
	var sumPriceQty int64
	trades := s.trades.Since(windowStart)
	for _, t := range trades {
		sumQty += t.Quantity
		sumPriceQty += t.Quantity * t.Price
	}

	if sumQty == 0 {
		return nil, domain.ErrNoTradesFound
	}

	// VWAP = sum(price × quantity) / sum(quantity)
	return &VWAPResult{
		Price:          float64(sumPriceQty) / float64(sumQty),
		Window:         s.vwapWindow,
		TradesInWindow: len(trades),
	}, nil
}

// GeometricMean computes the Nth root of the product of all stored
// trade prices, with no time window. The product is accumulated as a
// sum of logarithms so long histories don't overflow float64; a zero
// price still collapses the result to 0 just as a direct product
// would. Returns domain.ErrNoTradesFound for an empty store.
func (s *MetricsService) GeometricMean() (*GeometricMeanResult, error) {
	trades := s.trades.All()
	if len(trades) == 0 {
		return nil, domain.ErrNoTradesFound
	}

	var logSum float64
	for _, t := range trades {
		logSum += math.Log(float64(t.Price))
	}

	return &GeometricMeanResult{
		Price:      math.Exp(logSum / float64(len(trades))),
		TradeCount: len(trades),
	}, nil
}

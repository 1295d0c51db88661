package handler

import (
	"errors"
	"net/http"

	"github.com/srikanthkonagalla/stockmetrics/internal/domain"
	"github.com/srikanthkonagalla/stockmetrics/internal/service"
)

// MetricsHandler handles HTTP requests for trade recording and
// aggregate metric queries.
type MetricsHandler struct {
	metricsSvc *service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metricsSvc *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsSvc: metricsSvc}
}

// recordTradeRequest is the JSON request body for POST /trades.
type recordTradeRequest struct {
	Timestamp string `json:"timestamp"`
	Quantity  int64  `json:"quantity"`
	Side      string `json:"side"`
	Price     int64  `json:"price"`
}

// tradeResponse is the JSON representation of a recorded trade.
type tradeResponse struct {
	TradeID    string `json:"trade_id"`
	RecordedAt string `json:"recorded_at"`
	Quantity   int64  `json:"quantity"`
	Side       string `json:"side"`
	Price      int64  `json:"price"`
}

// tradeListResponse is the JSON response for GET /trades.
type tradeListResponse struct {
	Trades []tradeResponse `json:"trades"`
	Count  int             `json:"count"`
}

// vwapResponse is the JSON response for GET /metrics/vwap.
type vwapResponse struct {
	VWAP           float64 `json:"vwap"`
	Window         string  `json:"window"`
	TradesInWindow int     `json:"trades_in_window"`
}

// geometricMeanResponse is the JSON response for GET /metrics/geometric-mean.
type geometricMeanResponse struct {
	GeometricMean float64 `json:"geometric_mean"`
	TradeCount    int     `json:"trade_count"`
}

// RecordTrade handles POST /trades.
func (h *MetricsHandler) RecordTrade(w http.ResponseWriter, r *http.Request) {
	var req recordTradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	// The domain stores any indicator byte as-is; the transport just
	// requires it to be exactly one character.
	if len(req.Side) != 1 {
		WriteError(w, http.StatusBadRequest, "validation_error", "side must be a single character")
		return
	}

	trade, err := h.metricsSvc.RecordTrade(req.Timestamp, req.Quantity, req.Side[0], req.Price)
	if err != nil {
		mapMetricsError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toTradeResponse(trade))
}

// ListTrades handles GET /trades.
func (h *MetricsHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades := h.metricsSvc.ListTrades()

	resp := tradeListResponse{
		Trades: make([]tradeResponse, len(trades)),
		Count:  len(trades),
	}
	for i, t := range trades {
		resp.Trades[i] = toTradeResponse(t)
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GetVWAP handles GET /metrics/vwap.
func (h *MetricsHandler) GetVWAP(w http.ResponseWriter, r *http.Request) {
	result, err := h.metricsSvc.VolumeWeightedPrice()
	if err != nil {
		mapMetricsError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, vwapResponse{
		VWAP:           result.Price,
		Window:         result.Window.String(),
		TradesInWindow: result.TradesInWindow,
	})
}

// GetGeometricMean handles GET /metrics/geometric-mean.
func (h *MetricsHandler) GetGeometricMean(w http.ResponseWriter, r *http.Request) {
	result, err := h.metricsSvc.GeometricMean()
	if err != nil {
		mapMetricsError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, geometricMeanResponse{
		GeometricMean: result.Price,
		TradeCount:    result.TradeCount,
	})
}

// toTradeResponse converts a domain trade to its JSON representation.
func toTradeResponse(t *domain.Trade) tradeResponse {
	return tradeResponse{
		TradeID:    t.TradeID,
		RecordedAt: t.RecordedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Quantity:   t.Quantity,
		Side:       string([]byte{t.Side}),
		Price:      t.Price,
	}
}

// mapMetricsError maps domain errors to HTTP responses for trade and
// metric endpoints.
func mapMetricsError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNoTradesFound):
		WriteError(w, http.StatusNotFound, "no_trades_found", "No trades found for the given criteria")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/srikanthkonagalla/stockmetrics/internal/domain"
)

// RatioHandler handles HTTP requests for the stateless ratio
// calculations. It has no dependencies: both formulas are pure
// functions of their query parameters.
type RatioHandler struct{}

// NewRatioHandler creates a new RatioHandler.
func NewRatioHandler() *RatioHandler {
	return &RatioHandler{}
}

// dividendYieldResponse is the JSON response for GET /ratios/dividend-yield.
type dividendYieldResponse struct {
	DividendYield float64 `json:"dividend_yield"`
}

// peRatioResponse is the JSON response for GET /ratios/pe-ratio.
type peRatioResponse struct {
	PERatio float64 `json:"pe_ratio"`
}

// GetDividendYield handles GET /ratios/dividend-yield.
//
// Query parameters: price and trade_type are required; last_dividend,
// fixed_dividend, and par_value default to 0 when absent. The formulas
// themselves don't guard division by zero, so a zero price is rejected
// here to keep the JSON encodable.
func (h *RatioHandler) GetDividendYield(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	price, err := strconv.ParseInt(q.Get("price"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "price must be a valid integer")
		return
	}
	if price == 0 {
		WriteError(w, http.StatusBadRequest, "validation_error", "price must be non-zero")
		return
	}

	tradeType := q.Get("trade_type")
	if tradeType == "" {
		WriteError(w, http.StatusBadRequest, "validation_error", "trade_type is required")
		return
	}

	lastDividend, err := parseFloatParam(q.Get("last_dividend"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "last_dividend must be a valid number")
		return
	}

	fixedDividend, err := parseFloatParam(q.Get("fixed_dividend"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "fixed_dividend must be a valid number")
		return
	}

	parValue := int64(0)
	if v := q.Get("par_value"); v != "" {
		parValue, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "validation_error", "par_value must be a valid integer")
			return
		}
	}

	yield, err := domain.DividendYield(price, domain.TradeType(tradeType), lastDividend, fixedDividend, parValue)
	if err != nil {
		mapRatioError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dividendYieldResponse{DividendYield: yield})
}

// GetPERatio handles GET /ratios/pe-ratio.
//
// Query parameters price and dividend are required. The formula doesn't
// guard division by zero, so a zero dividend is rejected here to keep
// the JSON encodable.
func (h *RatioHandler) GetPERatio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	price, err := strconv.ParseInt(q.Get("price"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "price must be a valid integer")
		return
	}

	dividend, err := strconv.ParseFloat(q.Get("dividend"), 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "dividend must be a valid number")
		return
	}
	if dividend == 0 {
		WriteError(w, http.StatusBadRequest, "validation_error", "dividend must be non-zero")
		return
	}

	WriteJSON(w, http.StatusOK, peRatioResponse{PERatio: domain.PERatio(price, dividend)})
}

// parseFloatParam parses an optional float query parameter, treating an
// empty string as 0.
func parseFloatParam(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// mapRatioError maps domain errors to HTTP responses for ratio endpoints.
func mapRatioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTradeType):
		WriteError(w, http.StatusBadRequest, "invalid_trade_type", "trade_type must be \"Common\" or \"Preferred\"")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

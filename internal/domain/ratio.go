package domain

// TradeType selects the dividend yield formula for a stock.
type TradeType string

const (
	TradeTypeCommon    TradeType = "Common"
	TradeTypePreferred TradeType = "Preferred"
)

// DividendYield computes the dividend yield for a stock. Common stock
// yields lastDividend/price; preferred stock yields
// (fixedDividend × parValue)/price. Any other trade type returns
// ErrInvalidTradeType. A zero price is not guarded: the division
// follows IEEE 754 (±Inf or NaN), and callers are expected to validate
// price beforehand.
func DividendYield(price int64, tradeType TradeType, lastDividend, fixedDividend float64, parValue int64) (float64, error) {
	switch tradeType {
	case TradeTypeCommon:
		return lastDividend / float64(price), nil
	case TradeTypePreferred:
		return (fixedDividend * float64(parValue)) / float64(price), nil
	default:
		return 0, ErrInvalidTradeType
	}
}

// PERatio computes the price/earnings ratio as price divided by
// dividend. A zero dividend is not guarded and yields ±Inf or NaN.
func PERatio(price int64, dividend float64) float64 {
	return float64(price) / dividend
}

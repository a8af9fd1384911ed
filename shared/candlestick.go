package shared

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// StatusOk is the provider's success status for market data queries.
const StatusOk = "Ok"

// OHLC represents the price summary for one candle bucket.
type OHLC struct {
	High  float64
	Open  float64
	Close float64
	Low   float64
}

// BodyPercent returns the open to close move as a percentage of the
// open/close midpoint. The midpoint denominator is deliberate, it is not
// the standard percent-of-open change.
func (c *OHLC) BodyPercent() float64 {
	return (c.Close - c.Open) / ((c.Open + c.Close) / 200)
}

// WickPercent returns the low to high range as a percentage of the
// high/low midpoint, using the same scaling convention as BodyPercent.
func (c *OHLC) WickPercent() float64 {
	return (c.High - c.Low) / ((c.High + c.Low) / 200)
}

// Candlestick represents a unit candlestick for an instrument.
type Candlestick struct {
	OHLC
	Volume float64
	Date   time.Time

	// Metadata fields.
	FIGI     string
	Interval Interval
}

// CandleResponse represents the provider's reply to a candle query. The
// candles are kept as raw json results so a single malformed candle can be
// skipped without failing the batch.
type CandleResponse struct {
	Status  string
	Candles []gjson.Result
}

// Ok reports whether the provider answered the query successfully.
func (r *CandleResponse) Ok() bool {
	return r.Status == StatusOk
}

// ParseCandle extracts a candlestick from the provided json candle data.
func ParseCandle(data gjson.Result, figi string, interval Interval) (Candlestick, error) {
	candle := Candlestick{
		OHLC: OHLC{
			Open:  data.Get("o").Float(),
			Close: data.Get("c").Float(),
			High:  data.Get("h").Float(),
			Low:   data.Get("l").Float(),
		},
		Volume:   data.Get("v").Float(),
		FIGI:     figi,
		Interval: interval,
	}

	dt, err := time.Parse(CandleTimeLayout, data.Get("time").String())
	if err != nil {
		return Candlestick{}, fmt.Errorf("parsing candle time: %w", err)
	}

	candle.Date = dt

	return candle, nil
}

// DateLabel returns the short formatted date keying the candle in a price
// record. Labels are not guaranteed unique across a multi day window.
func (c *Candlestick) DateLabel() string {
	return c.Date.Format(DateLabelLayout)
}

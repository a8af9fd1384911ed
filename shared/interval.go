package shared

import (
	"fmt"
	"time"
)

const (
	// RequestTimeLayout is the format layout for candle query window bounds.
	// The provider expects UTC timestamps with a trailing Z designator.
	RequestTimeLayout = time.RFC3339
	// CandleTimeLayout is the format layout for parsing candle timestamps.
	CandleTimeLayout = time.RFC3339
	// DateLabelLayout is the format layout for the short date labels keying
	// candles in a price record, eg. 22Jan.
	DateLabelLayout = "02Jan"
	// SentinelTimeLayout is the format layout for the timestamp embedded in
	// the no data sentinel.
	SentinelTimeLayout = "2006-01-02 15:04:05"
)

// Interval represents the candle bucket granularity for market data queries.
// It is string backed because the provider takes the interval name verbatim.
type Interval string

const (
	Hour  Interval = "hour"
	Day   Interval = "day"
	Week  Interval = "week"
	Month Interval = "month"
)

// ParseInterval parses the provided interval name.
func ParseInterval(name string) (Interval, error) {
	switch Interval(name) {
	case Hour, Day, Week, Month:
		return Interval(name), nil
	default:
		return "", fmt.Errorf("unknown candle interval: %s", name)
	}
}

// String stringifies the provided interval.
func (i Interval) String() string {
	return string(i)
}

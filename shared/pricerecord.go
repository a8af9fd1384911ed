package shared

import (
	"fmt"
	"time"
)

// noDataFormat is the sentinel recorded for a ticker whose candle query
// returned no data.
const noDataFormat = "ERR: %s no data for %s"

// NoDataMessage formats the sentinel recorded when a candle query returns
// zero candles for the provided ticker.
func NoDataMessage(now time.Time, ticker string) string {
	return fmt.Sprintf(noDataFormat, now.Format(SentinelTimeLayout), ticker)
}

// PriceEntry holds the priced dates for one ticker, or the no data sentinel
// when the ticker's query returned zero candles.
type PriceEntry struct {
	noData  string
	labels  []string
	candles map[string]OHLC
}

// NewNoDataEntry initializes a price entry carrying the provided sentinel.
func NewNoDataEntry(message string) *PriceEntry {
	return &PriceEntry{noData: message}
}

// NewCandlesEntry initializes an empty candle price entry.
func NewCandlesEntry() *PriceEntry {
	return &PriceEntry{candles: make(map[string]OHLC)}
}

// IsNoData reports whether the entry carries the no data sentinel.
func (e *PriceEntry) IsNoData() bool {
	return e.candles == nil
}

// NoData returns the entry's sentinel message.
func (e *PriceEntry) NoData() string {
	return e.noData
}

// Record stores the provided candle under the provided date label. A
// colliding label overwrites the stored values and keeps its original
// position in the label order.
func (e *PriceEntry) Record(label string, candle OHLC) {
	if _, ok := e.candles[label]; !ok {
		e.labels = append(e.labels, label)
	}
	e.candles[label] = candle
}

// Labels returns the entry's date labels in insertion order.
func (e *PriceEntry) Labels() []string {
	return e.labels
}

// Candle returns the candle stored under the provided date label.
func (e *PriceEntry) Candle(label string) OHLC {
	return e.candles[label]
}

// PriceRecord represents the assembled per ticker, per date prices for one
// fetch. Ticker order is insertion order, the renderer's output order
// depends on it.
type PriceRecord struct {
	Timeframe string

	tickers []string
	entries map[string]*PriceEntry
}

// NewPriceRecord initializes an empty price record for the provided
// timeframe.
func NewPriceRecord(timeframe string) *PriceRecord {
	return &PriceRecord{
		Timeframe: timeframe,
		entries:   make(map[string]*PriceEntry),
	}
}

// Append stores the provided ticker's entry. Appending an already present
// ticker overwrites its entry and keeps its original position.
func (r *PriceRecord) Append(ticker string, entry *PriceEntry) {
	if _, ok := r.entries[ticker]; !ok {
		r.tickers = append(r.tickers, ticker)
	}
	r.entries[ticker] = entry
}

// Tickers returns the record's tickers in insertion order.
func (r *PriceRecord) Tickers() []string {
	return r.tickers
}

// Entry returns the entry stored for the provided ticker.
func (r *PriceRecord) Entry(ticker string) *PriceEntry {
	return r.entries[ticker]
}

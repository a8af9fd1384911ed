package shared

import (
	"context"
	"time"
)

// InstrumentLister defines the requirements for listing tradable instruments.
type InstrumentLister interface {
	// ListInstruments fetches the full tradable instrument listing.
	ListInstruments(ctx context.Context) ([]Instrument, error)
}

// CandleQuerier defines the requirements for querying candle data.
type CandleQuerier interface {
	// GetCandles fetches candles for an instrument over the provided window.
	GetCandles(ctx context.Context, figi string, start time.Time, end time.Time, interval Interval) (CandleResponse, error)
}

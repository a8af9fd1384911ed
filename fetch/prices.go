package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hautieng/candleboard/shared"
	"github.com/rs/zerolog"
)

// FetcherConfig represents the configuration for the price fetcher.
type FetcherConfig struct {
	// Directory resolves tickers to instrument identifiers.
	Directory *Directory
	// Querier provides candle data for instruments.
	Querier shared.CandleQuerier
	// Now supplies the current time, defaulting to time.Now when nil.
	Now func() time.Time
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *FetcherConfig) Validate() error {
	var errs error

	if cfg.Directory == nil {
		errs = errors.Join(errs, fmt.Errorf("instrument directory cannot be nil"))
	}
	if cfg.Querier == nil {
		errs = errors.Join(errs, fmt.Errorf("candle querier cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Fetcher assembles per ticker price records from provider candle data.
type Fetcher struct {
	cfg *FetcherConfig
}

// NewFetcher initializes a new price fetcher.
func NewFetcher(cfg *FetcherConfig) (*Fetcher, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Fetcher{cfg: cfg}, nil
}

// FetchPrices queries candles for each resolvable ticker over the lookback
// window and assembles the price record. Tickers absent from the directory
// are skipped without a placeholder, failed queries drop their ticker from
// the record, and an empty result is recorded as the no data sentinel. A
// transport level query error aborts the entire fetch.
func (f *Fetcher) FetchPrices(ctx context.Context, tickers []string, depthDays int, interval shared.Interval) (*shared.PriceRecord, error) {
	now := f.cfg.Now().UTC()
	start := now.AddDate(0, 0, -depthDays)

	record := shared.NewPriceRecord(interval.String())
	for _, ticker := range tickers {
		figi, ok := f.cfg.Directory.Identifier(ticker)
		if !ok {
			continue
		}

		res, err := f.cfg.Querier.GetCandles(ctx, figi, start, now, interval)
		if err != nil {
			return nil, fmt.Errorf("querying candles for %s: %w", ticker, err)
		}

		if !res.Ok() {
			// A failed query drops the ticker from the record entirely,
			// unlike an empty result which is recorded as a sentinel.
			continue
		}

		if len(res.Candles) == 0 {
			record.Append(ticker, shared.NewNoDataEntry(shared.NoDataMessage(now, ticker)))
			continue
		}

		entry := shared.NewCandlesEntry()
		for idx := range res.Candles {
			candle, err := shared.ParseCandle(res.Candles[idx], figi, interval)
			if err != nil {
				// A malformed candle is skipped on its own, the fetch
				// carries on.
				f.cfg.Logger.Error().Msgf("parsing candle for %s: %v", ticker, err)
				continue
			}

			entry.Record(candle.DateLabel(), candle.OHLC)
		}

		record.Append(ticker, entry)
	}

	return record, nil
}

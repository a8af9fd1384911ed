package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hautieng/candleboard/fetch"
	"github.com/hautieng/candleboard/render"
	"github.com/hautieng/candleboard/shared"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// ReportConfig represents the configuration struct for the report service.
type ReportConfig struct {
	// Token is the brokerage sandbox API token.
	Token string
	// BaseURL is the brokerage API endpoint.
	BaseURL string
	// Currency filters tracked instruments to one trade currency. An empty
	// currency tracks all of them.
	Currency string
	// Tickers represents the tracked tickers.
	Tickers []string
	// DepthDays is the lookback window in days.
	DepthDays int
	// Interval is the candle interval for the report.
	Interval shared.Interval
	// MinDiffPercent is the body move threshold that colors a row.
	MinDiffPercent float64
	// MaxDiffPercent is the body move threshold that marks a row selected.
	MaxDiffPercent float64
	// Writer receives the rendered report.
	Writer io.Writer
}

// Validate asserts the config sane inputs.
func (cfg *ReportConfig) Validate() error {
	var errs error

	if cfg.Token == "" {
		errs = errors.Join(errs, fmt.Errorf("brokerage api token cannot be an empty string"))
	}
	if cfg.BaseURL == "" {
		errs = errors.Join(errs, fmt.Errorf("brokerage api endpoint cannot be an empty string"))
	}
	if len(cfg.Tickers) == 0 {
		errs = errors.Join(errs, fmt.Errorf("no tickers provided for price report"))
	}
	if cfg.DepthDays <= 0 {
		errs = errors.Join(errs, fmt.Errorf("lookback depth must be a positive day count"))
	}
	if cfg.Interval == "" {
		errs = errors.Join(errs, fmt.Errorf("candle interval cannot be an empty string"))
	}
	if cfg.Writer == nil {
		errs = errors.Join(errs, fmt.Errorf("report writer cannot be nil"))
	}

	return errs
}

// Report represents a one shot price reporting service.
type Report struct {
	cfg     *ReportConfig
	fetcher *fetch.Fetcher
	table   *render.Table
	logger  *zerolog.Logger
}

// NewReport initializes a new report service. Building it performs the
// provider bootstrap and the instrument directory fetch, a failure in
// either is fatal.
func NewReport(ctx context.Context, cfg *ReportConfig) (*Report, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := log.With().Str("service", "report").Str("run", uuid.New().String()).Logger()

	client, err := fetch.NewBrokerClient(ctx, &fetch.BrokerConfig{
		Token:   cfg.Token,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating brokerage client: %v", err)
	}

	directoryLogger := logger.With().Str("component", "directory").Logger()
	directory, err := fetch.NewDirectory(ctx, &fetch.DirectoryConfig{
		Lister:   client,
		Currency: cfg.Currency,
		Logger:   &directoryLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating instrument directory: %v", err)
	}

	fetcherLogger := logger.With().Str("component", "fetcher").Logger()
	fetcher, err := fetch.NewFetcher(&fetch.FetcherConfig{
		Directory: directory,
		Querier:   client,
		Logger:    &fetcherLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating price fetcher: %v", err)
	}

	tableLogger := logger.With().Str("component", "table").Logger()
	table, err := render.NewTable(&render.TableConfig{
		MinDiffPercent: cfg.MinDiffPercent,
		MaxDiffPercent: cfg.MaxDiffPercent,
		Writer:         cfg.Writer,
		Logger:         &tableLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating table renderer: %v", err)
	}

	return &Report{
		cfg:     cfg,
		fetcher: fetcher,
		table:   table,
		logger:  &logger,
	}, nil
}

// Run performs one fetch and print cycle.
func (r *Report) Run(ctx context.Context) error {
	r.logger.Info().Msgf("fetching %s candles for %d tickers over %d days",
		r.cfg.Interval, len(r.cfg.Tickers), r.cfg.DepthDays)

	record, err := r.fetcher.FetchPrices(ctx, r.cfg.Tickers, r.cfg.DepthDays, r.cfg.Interval)
	if err != nil {
		return fmt.Errorf("fetching prices: %v", err)
	}

	r.table.Render(record)

	return nil
}

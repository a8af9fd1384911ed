package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/hautieng/candleboard/shared"
	"github.com/rs/zerolog"
)

// DirectoryConfig represents the configuration for the instrument directory.
type DirectoryConfig struct {
	// Lister provides the tradable instrument listing.
	Lister shared.InstrumentLister
	// Currency filters the listing to instruments traded in it. An empty
	// currency includes all instruments.
	Currency string
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *DirectoryConfig) Validate() error {
	var errs error

	if cfg.Lister == nil {
		errs = errors.Join(errs, fmt.Errorf("instrument lister cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Directory maps tickers to their opaque instrument identifiers. It is
// built once at construction and never mutated afterwards.
type Directory struct {
	cfg   *DirectoryConfig
	figis map[string]string
}

// NewDirectory builds the ticker to identifier mapping from the full
// instrument listing. A ticker appearing more than once in the listing
// keeps the later identifier, the outcome depends on the provider's
// response ordering.
func NewDirectory(ctx context.Context, cfg *DirectoryConfig) (*Directory, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	instruments, err := cfg.Lister.ListInstruments(ctx)
	if err != nil {
		return nil, fmt.Errorf("building instrument directory: %w", err)
	}

	figis := make(map[string]string)
	for idx := range instruments {
		if cfg.Currency != "" && instruments[idx].Currency != cfg.Currency {
			continue
		}

		figis[instruments[idx].Ticker] = instruments[idx].FIGI
	}

	cfg.Logger.Info().Msgf("instrument directory holds %d tickers", len(figis))

	return &Directory{
		cfg:   cfg,
		figis: figis,
	}, nil
}

// Identifier returns the identifier for the provided ticker.
func (d *Directory) Identifier(ticker string) (string, bool) {
	figi, ok := d.figis[ticker]
	return figi, ok
}

// LookupInstrument fetches the full listing and scans it for the first
// instrument matching the provided ticker, returning nil when no match
// exists. It consults the provider directly rather than the built mapping,
// so the two can disagree if the catalog changes mid run.
func (d *Directory) LookupInstrument(ctx context.Context, ticker string) (*shared.Instrument, error) {
	instruments, err := d.cfg.Lister.ListInstruments(ctx)
	if err != nil {
		return nil, fmt.Errorf("looking up instrument %s: %w", ticker, err)
	}

	for idx := range instruments {
		if instruments[idx].Ticker == ticker {
			return &instruments[idx], nil
		}
	}

	return nil, nil
}

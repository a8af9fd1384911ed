package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/hautieng/candleboard/shared"
	"github.com/rs/zerolog"
)

// TableConfig represents the configuration for the table renderer.
type TableConfig struct {
	// MinDiffPercent is the body move threshold that colors a row.
	MinDiffPercent float64
	// MaxDiffPercent is the body move threshold that marks a row selected.
	MaxDiffPercent float64
	// Writer receives the rendered table.
	Writer io.Writer
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *TableConfig) Validate() error {
	var errs error

	if cfg.Writer == nil {
		errs = errors.Join(errs, fmt.Errorf("writer cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Table renders price records as a color coded terminal table.
type Table struct {
	cfg *TableConfig
}

// NewTable initializes a new table renderer.
func NewTable(cfg *TableConfig) (*Table, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Table{cfg: cfg}, nil
}

// Render prints the provided price record as a color coded table. Row
// themes alternate on a counter spanning the entire report, and a failure
// rendering one ticker never aborts the report.
func (t *Table) Render(record *shared.PriceRecord) {
	fmt.Fprintf(t.cfg.Writer, "%s%s\tname\thigh\topen\tclose\tlow\tname\tcl-op\thi-lw%s\n",
		Bold, record.Timeframe, Reset)

	var row int
	for _, ticker := range record.Tickers() {
		entry := record.Entry(ticker)

		rows, err := t.renderEntry(ticker, entry, row)
		if err != nil {
			// Surface the raw entry as a fallback line and move on to the
			// next ticker.
			t.cfg.Logger.Error().Msgf("rendering %s: %v", ticker, err)
			fmt.Fprintf(t.cfg.Writer, "%s%s%s\n", LightRed, strings.TrimSpace(spew.Sdump(entry)), Reset)
		}

		row += rows
	}
}

// renderEntry prints the rows for one ticker, returning the number of rows
// printed so the theme parity carries across ticker boundaries.
func (t *Table) renderEntry(ticker string, entry *shared.PriceEntry, row int) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering rows for %s: %v", ticker, r)
		}
	}()

	w := t.cfg.Writer

	if entry.IsNoData() {
		// The sentinel is surfaced as a raw alert line, not a table row.
		fmt.Fprintf(w, "%s%s%s\n", LightRed, entry.NoData(), Reset)
		return 0, nil
	}

	for _, label := range entry.Labels() {
		candle := entry.Candle(label)

		theme := Yellow
		if (row+n)%2 != 0 {
			theme = White
		}

		fmt.Fprintf(w, "%s\t%s%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s%s", label, theme,
			ticker, candle.High, candle.Open, candle.Close, candle.Low, ticker, Reset)

		body := candle.BodyPercent()
		if body < -t.cfg.MinDiffPercent {
			fmt.Fprint(w, LightBlue)
		}
		if body < -t.cfg.MaxDiffPercent {
			fmt.Fprint(w, Select)
		}
		if body > t.cfg.MinDiffPercent {
			fmt.Fprint(w, LightGreen)
		}
		// The positive overlay bound is non-strict, unlike the negative
		// side.
		if body >= t.cfg.MaxDiffPercent {
			fmt.Fprint(w, Select)
		}
		fmt.Fprintf(w, "\t%.1f %%", body)
		fmt.Fprint(w, Reset)

		wick := candle.WickPercent()
		if wick > t.cfg.MaxDiffPercent*2 {
			fmt.Fprint(w, LightRed)
		}
		fmt.Fprintf(w, "\t%.1f %%", wick)
		fmt.Fprint(w, Reset)
		fmt.Fprintln(w)

		n++
	}

	return n, nil
}

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hautieng/candleboard/shared"
	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
)

func setupTable(t *testing.T, minDiff float64, maxDiff float64) (*Table, *bytes.Buffer) {
	logger := zerolog.Nop()
	buf := &bytes.Buffer{}

	table, err := NewTable(&TableConfig{
		MinDiffPercent: minDiff,
		MaxDiffPercent: maxDiff,
		Writer:         buf,
		Logger:         &logger,
	})
	assert.NoError(t, err)

	return table, buf
}

// flat returns a candle with no body move and a narrow range so no
// threshold fires.
func flat() shared.OHLC {
	return shared.OHLC{High: 101, Open: 100, Close: 100, Low: 99}
}

func TestTableConfigValidate(t *testing.T) {
	logger := zerolog.Nop()

	cfg := &TableConfig{Writer: &bytes.Buffer{}, Logger: &logger}
	assert.NoError(t, cfg.Validate())

	missing := &TableConfig{}
	err := missing.Validate()
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "writer cannot be nil"))
	assert.True(t, strings.Contains(err.Error(), "logger cannot be nil"))
}

func TestRenderHeader(t *testing.T) {
	table, buf := setupTable(t, 5, 15)

	table.Render(shared.NewPriceRecord("week"))

	assert.Equal(t, buf.String(), Bold+"week\tname\thigh\topen\tclose\tlow\tname\tcl-op\thi-lw"+Reset+"\n")
}

func TestRenderRow(t *testing.T) {
	table, buf := setupTable(t, 5, 15)

	record := shared.NewPriceRecord("day")
	entry := shared.NewCandlesEntry()
	entry.Record("04Feb", shared.OHLC{High: 110, Open: 100, Close: 105, Low: 95})
	record.Append("TSLA", entry)

	table.Render(record)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 2)

	// Prices print with one decimal place, the ticker brackets them, and
	// the body and wick percentages follow.
	row := lines[1]
	assert.Equal(t, row, "04Feb\t"+Yellow+"TSLA\t110.0\t100.0\t105.0\t95.0\tTSLA"+Reset+
		"\t4.9 %"+Reset+"\t14.6 %"+Reset)
}

func TestRenderRowParity(t *testing.T) {
	table, buf := setupTable(t, 5, 15)

	// Three rows across two tickers, the theme counter must span the
	// ticker boundary rather than reset at it.
	record := shared.NewPriceRecord("day")

	first := shared.NewCandlesEntry()
	first.Record("03Feb", flat())
	first.Record("04Feb", flat())
	record.Append("TSLA", first)

	second := shared.NewCandlesEntry()
	second.Record("04Feb", flat())
	record.Append("AMZN", second)

	table.Render(record)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 4)
	assert.True(t, strings.Contains(lines[1], Yellow+"TSLA"))
	assert.True(t, strings.Contains(lines[2], White+"TSLA"))
	assert.True(t, strings.Contains(lines[3], Yellow+"AMZN"))
}

func TestRenderBodyThresholds(t *testing.T) {
	tests := []struct {
		name       string
		candle     shared.OHLC
		wantColors []string
		notColors  []string
	}{
		{
			// body = 200*(90-110)/200 = -20, past both thresholds.
			name:       "negative beyond max",
			candle:     shared.OHLC{High: 110, Open: 110, Close: 90, Low: 90},
			wantColors: []string{LightBlue, LightBlue + Select},
			notColors:  []string{LightGreen},
		},
		{
			// body = (92.5-107.5)/1 = -15 exactly, the strict bound keeps
			// the selected marker off.
			name:       "negative at max boundary",
			candle:     shared.OHLC{High: 108, Open: 107.5, Close: 92.5, Low: 93},
			wantColors: []string{LightBlue},
			notColors:  []string{Select, LightGreen},
		},
		{
			// body = +15 exactly, the non-strict positive bound fires the
			// selected marker.
			name:       "positive at max boundary",
			candle:     shared.OHLC{High: 108, Open: 92.5, Close: 107.5, Low: 93},
			wantColors: []string{LightGreen, LightGreen + Select},
			notColors:  []string{LightBlue},
		},
		{
			// body = (104-100)/1.02 ~ 3.9, inside both thresholds.
			name:      "inside thresholds",
			candle:    shared.OHLC{High: 105, Open: 100, Close: 104, Low: 100},
			notColors: []string{LightBlue, LightGreen, Select},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, buf := setupTable(t, 5, 15)

			record := shared.NewPriceRecord("day")
			entry := shared.NewCandlesEntry()
			entry.Record("04Feb", tt.candle)
			record.Append("TSLA", entry)

			table.Render(record)

			out := buf.String()
			for _, color := range tt.wantColors {
				assert.True(t, strings.Contains(out, color))
			}
			for _, color := range tt.notColors {
				assert.False(t, strings.Contains(out, color))
			}
		})
	}
}

func TestRenderWickAlert(t *testing.T) {
	table, buf := setupTable(t, 5, 15)

	// wick = 200*(120-80)/200 = 40, past twice the max threshold.
	record := shared.NewPriceRecord("day")
	entry := shared.NewCandlesEntry()
	entry.Record("04Feb", shared.OHLC{High: 120, Open: 100, Close: 100, Low: 80})
	record.Append("TSLA", entry)

	table.Render(record)

	assert.True(t, strings.Contains(buf.String(), LightRed+"\t40.0 %"))
}

func TestRenderNoDataSentinel(t *testing.T) {
	table, buf := setupTable(t, 5, 15)

	// A sentinel entry prints as a raw alert line without aborting the
	// report or advancing the row theme counter.
	record := shared.NewPriceRecord("week")
	record.Append("TSLA", shared.NewNoDataEntry("ERR: 2025-02-04 15:05:00 no data for TSLA"))

	entry := shared.NewCandlesEntry()
	entry.Record("04Feb", flat())
	record.Append("AMZN", entry)

	table.Render(record)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 3)
	assert.Equal(t, lines[1], LightRed+"ERR: 2025-02-04 15:05:00 no data for TSLA"+Reset)
	assert.True(t, strings.Contains(lines[2], Yellow+"AMZN"))
}

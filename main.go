package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/hautieng/candleboard/service"
	"github.com/hautieng/candleboard/shared"
)

const usage = `Usage:
	candleboard
	candleboard 1 day
	candleboard 3 day
	candleboard 7 week
	candleboard 14 week
	candleboard 30 month 10 20

	candleboard [depthDays interval [minDiffPercent maxDiffPercent]]`

const (
	defaultDepthDays = 7
	defaultInterval  = shared.Week
	defaultMinDiff   = 5
	defaultMaxDiff   = 15
)

// reportParams holds the positional report parameters.
type reportParams struct {
	depthDays int
	interval  shared.Interval
	minDiff   int
	maxDiff   int
}

func defaultParams() reportParams {
	return reportParams{
		depthDays: defaultDepthDays,
		interval:  defaultInterval,
		minDiff:   defaultMinDiff,
		maxDiff:   defaultMaxDiff,
	}
}

// parseParams interprets the positional arguments: none, depth and
// interval, or depth, interval and both diff thresholds. Any argument
// shape it cannot use yields the defaults and false so the caller can
// print the usage text, a defaults run still proceeds.
func parseParams(args []string) (reportParams, bool) {
	params := defaultParams()

	if len(args) != 2 && len(args) != 4 {
		return params, len(args) == 0
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return defaultParams(), false
	}

	interval, err := shared.ParseInterval(args[1])
	if err != nil {
		return defaultParams(), false
	}

	params.depthDays = depth
	params.interval = interval

	if len(args) == 4 {
		minDiff, err := strconv.Atoi(args[2])
		if err != nil {
			return defaultParams(), false
		}

		maxDiff, err := strconv.Atoi(args[3])
		if err != nil {
			return defaultParams(), false
		}

		params.minDiff = minDiff
		params.maxDiff = maxDiff
	}

	return params, true
}

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Printf("loading config: %v", err)
		os.Exit(1)
	}

	params, ok := parseParams(flag.Args())
	if !ok {
		fmt.Println(usage)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleTermination(ctx, cancel)

	reportCfg := service.ReportConfig{
		Token:          cfg.Token,
		BaseURL:        cfg.BaseURL,
		Currency:       cfg.Currency,
		Tickers:        cfg.Tickers,
		DepthDays:      params.depthDays,
		Interval:       params.interval,
		MinDiffPercent: float64(params.minDiff),
		MaxDiffPercent: float64(params.maxDiff),
		Writer:         os.Stdout,
	}
	report, err := service.NewReport(ctx, &reportCfg)
	if err != nil {
		log.Printf("creating report service: %v", err)
		os.Exit(1)
	}

	err = report.Run(ctx)
	if err != nil {
		log.Printf("running report: %v", err)
		os.Exit(1)
	}
}

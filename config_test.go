package main

import (
	"strings"
	"testing"

	"github.com/hautieng/candleboard/shared"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name: "valid config",
			cfg: Config{
				Token:   "token",
				Tickers: []string{"TSLA", "AMZN"},
			},
			wantErr: nil,
		},
		{
			name: "missing token",
			cfg: Config{
				Tickers: []string{"TSLA"},
			},
			wantErr: []string{"brokerage api token cannot be an empty string"},
		},
		{
			name: "missing tickers",
			cfg: Config{
				Token: "token",
			},
			wantErr: []string{"no tickers provided for price report"},
		},
		{
			name: "missing both token and tickers",
			cfg:  Config{},
			wantErr: []string{
				"brokerage api token cannot be an empty string",
				"no tickers provided for price report",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error containing %v, got nil", tt.wantErr)
			}
			for _, substr := range tt.wantErr {
				if !strings.Contains(err.Error(), substr) {
					t.Errorf("expected error to contain %q, got %v", substr, err)
				}
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   reportParams
		wantOk bool
	}{
		{
			name:   "no args runs the defaults",
			args:   nil,
			want:   reportParams{depthDays: 7, interval: shared.Week, minDiff: 5, maxDiff: 15},
			wantOk: true,
		},
		{
			name:   "depth and interval",
			args:   []string{"3", "day"},
			want:   reportParams{depthDays: 3, interval: shared.Day, minDiff: 5, maxDiff: 15},
			wantOk: true,
		},
		{
			name:   "depth, interval and thresholds",
			args:   []string{"30", "month", "10", "20"},
			want:   reportParams{depthDays: 30, interval: shared.Month, minDiff: 10, maxDiff: 20},
			wantOk: true,
		},
		{
			name:   "wrong argument count yields usage and defaults",
			args:   []string{"3"},
			want:   defaultParams(),
			wantOk: false,
		},
		{
			name:   "three arguments yields usage and defaults",
			args:   []string{"3", "day", "10"},
			want:   defaultParams(),
			wantOk: false,
		},
		{
			name:   "unparseable depth yields usage and defaults",
			args:   []string{"three", "day"},
			want:   defaultParams(),
			wantOk: false,
		},
		{
			name:   "unknown interval yields usage and defaults",
			args:   []string{"3", "fortnight"},
			want:   defaultParams(),
			wantOk: false,
		},
		{
			name:   "unparseable threshold yields usage and defaults",
			args:   []string{"3", "day", "ten", "20"},
			want:   defaultParams(),
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := parseParams(tt.args)
			if ok != tt.wantOk {
				t.Errorf("expected ok %v, got %v", tt.wantOk, ok)
			}
			if params != tt.want {
				t.Errorf("expected params %+v, got %+v", tt.want, params)
			}
		})
	}
}

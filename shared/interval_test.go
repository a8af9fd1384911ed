package shared

import (
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Interval
		wantErr bool
	}{
		{
			name:  "day interval",
			input: "day",
			want:  Day,
		},
		{
			name:  "week interval",
			input: "week",
			want:  Week,
		},
		{
			name:  "month interval",
			input: "month",
			want:  Month,
		},
		{
			name:  "hour interval",
			input: "hour",
			want:  Hour,
		},
		{
			name:    "unknown interval",
			input:   "fortnight",
			wantErr: true,
		},
		{
			name:    "empty interval",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := ParseInterval(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, interval, tt.want)
			assert.Equal(t, interval.String(), tt.input)
		})
	}
}

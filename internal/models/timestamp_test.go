package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "rfc3339 with offset",
			input:    "2026-01-02T06:30:00+08:00",
			expected: time.Date(2026, 1, 2, 6, 30, 0, 0, time.FixedZone("", 8*3600)),
		},
		{
			name:     "rfc3339 utc",
			input:    "2026-01-02T06:30:00Z",
			expected: time.Date(2026, 1, 2, 6, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive read as utc",
			input:    "2026-01-02T06:30:00",
			expected: time.Date(2026, 1, 2, 6, 30, 0, 0, time.UTC),
		},
		{
			name:    "not a timestamp",
			input:   "tomorrow morning",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed))
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var payload struct {
		StartTime Timestamp `json:"start_time"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start_time":"2026-01-02T06:30:00"}`), &payload))
	assert.True(t, time.Date(2026, 1, 2, 6, 30, 0, 0, time.UTC).Equal(payload.StartTime.Time))
	assert.Equal(t, time.UTC, payload.StartTime.Location())

	err := json.Unmarshal([]byte(`{"start_time":"nope"}`), &payload)
	assert.Error(t, err)
}

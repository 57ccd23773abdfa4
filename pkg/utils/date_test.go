package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("empty string yields zero time", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("10/03/2024")
		assert.Error(t, err)
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-03-01", "2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("single day range", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-03-01", "2024-03-01")
		require.NoError(t, err)
		assert.True(t, start.Equal(*end))
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-03-10", "2024-03-01")
		assert.Error(t, err)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, _, err := ParseDateRange("not-a-date", "2024-03-01")
		assert.ErrorContains(t, err, "invalid start_date")
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, _, err := ParseDateRange("2024-03-01", "not-a-date")
		assert.ErrorContains(t, err, "invalid end_date")
	})
}

func TestTruncateToDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midday UTC",
			input:    time.Date(2024, 3, 10, 15, 30, 45, 123, time.UTC),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already midnight",
			input:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC location keeps the wall-clock day",
			input:    time.Date(2024, 3, 10, 22, 0, 0, 0, loc),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateToDay(tt.input))
		})
	}
}

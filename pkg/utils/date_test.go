package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-09-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC), *date)

	// String vazia retorna data zero sem erro
	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("12/09/2026")
	assert.Error(t, err)
}

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		slot         string
		expectedHour int
		expectError  bool
	}{
		{slot: "19:00", expectedHour: 19},
		{slot: "09:30", expectedHour: 9},
		{slot: "00:00", expectedHour: 0},
		{slot: "23:59", expectedHour: 23},
		{slot: "24:00", expectError: true},
		{slot: "19:60", expectError: true},
		{slot: "19", expectError: true},
		{slot: "ab:cd", expectError: true},
		{slot: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			hour, err := ParseTimeSlot(tt.slot)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHour, hour)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	// Contagem inclusiva nas duas pontas
	assert.Equal(t, 1, DaysBetween(start, start))
	assert.Equal(t, 2, DaysBetween(start, start.AddDate(0, 0, 1)))
	assert.Equal(t, 90, DaysBetween(start, time.Date(2026, time.November, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 91, DaysBetween(start, time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC)))

	// O horário dentro do dia não altera a contagem
	assert.Equal(t, 2, DaysBetween(
		time.Date(2026, time.September, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 2, 1, 0, 0, 0, time.UTC),
	))
}

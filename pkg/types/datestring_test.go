package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateStringValidate(t *testing.T) {
	valid := []string{"2026-03-16", "2024-02-29", "2026-12-31"}
	for _, s := range valid {
		assert.NoError(t, DateString(s).Validate(), s)
	}

	invalid := []string{"", "16-03-2026", "2026-3-16", "2026-02-30", "2025-02-29", "2026-13-01", "not-a-date"}
	for _, s := range invalid {
		assert.Error(t, DateString(s).Validate(), s)
	}
}

// ISO нумерация: 1 = понедельник .. 7 = воскресенье.
// Результат не зависит от часового пояса хоста.
func TestDateStringWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-03-16", 1}, // понедельник
		{"2026-03-17", 2},
		{"2026-03-20", 5}, // пятница
		{"2026-03-21", 6}, // суббота
		{"2026-03-22", 7}, // воскресенье
	}

	for _, tt := range tests {
		weekday, err := DateString(tt.date).Weekday()
		require.NoError(t, err, tt.date)
		assert.Equal(t, tt.want, weekday, tt.date)
	}
}

func TestDateStringScan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan("2026-03-16"))
	assert.Equal(t, DateString("2026-03-16"), d)

	// TIMESTAMP колонка
	require.NoError(t, d.Scan("2026-03-16T00:00:00Z"))
	assert.Equal(t, DateString("2026-03-16"), d)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2025-03", PeriodKey(2025, 3))
	assert.Equal(t, "2025-12", PeriodKey(2025, 12))
	assert.Equal(t, "0999-01", PeriodKey(999, 1))
}

func TestPeriodBounds(t *testing.T) {
	start, end := PeriodBounds(2025, 3)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), end)

	// Leap February
	start, end = PeriodBounds(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	// Non-leap February
	_, end = PeriodBounds(2025, 2)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year for the day-zero trick
	_, end = PeriodBounds(2025, 12)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

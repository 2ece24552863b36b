package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveCutoff(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	cutoff := ActiveCutoff(now)
	assert.Equal(t, "2025-03-14T15:04:26Z", cutoff)

	// RFC3339 UTC strings order lexicographically, which is what the
	// $gt query relies on.
	justActive := now.Add(-time.Minute).Format(time.RFC3339)
	stale := now.Add(-time.Hour).Format(time.RFC3339)
	assert.Greater(t, justActive, cutoff)
	assert.Less(t, stale, cutoff)
}

func TestDayAndMonthKeys(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-03-14", DayKey(now))
	assert.Equal(t, "2025-03", MonthKey(now))

	// Non-UTC inputs are normalized before formatting.
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, 4, 1, 1, 0, 0, 0, ist) // still March 31 in UTC
	assert.Equal(t, "2025-03-31", DayKey(late))
	assert.Equal(t, "2025-03", MonthKey(late))
}

func TestNormalizeDisease(t *testing.T) {
	assert.Equal(t, "cough", NormalizeDisease("  Cough "))
	assert.Equal(t, "skin irritation", NormalizeDisease("Skin Irritation"))
	assert.Equal(t, "", NormalizeDisease("   "))
}

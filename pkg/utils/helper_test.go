package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayKeepsLocalDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	// 01:30 local is still the previous day in UTC.
	ts := time.Date(2026, 8, 28, 1, 30, 0, 0, jakarta)

	got := StartOfDay(ts)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, jakarta), got)
	assert.Equal(t, jakarta, got.Location())

	// The same instant truncated by 24h lands on the UTC day boundary,
	// one local day earlier.
	assert.True(t, ts.Truncate(24*time.Hour).Before(got))
}

func TestStartOfDayIdempotent(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
	midnight := StartOfDay(ts)
	assert.Equal(t, midnight, StartOfDay(midnight))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

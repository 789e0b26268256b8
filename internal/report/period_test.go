package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodJanuaryRollsBackAYear(t *testing.T) {
	p, err := ResolvePeriod(1, 2024)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.December, 16, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2024, time.January, 15, 23, 59, 59, 999_000_000, time.UTC), p.To)
}

func TestResolvePeriodMidYear(t *testing.T) {
	p, err := ResolvePeriod(7, 2024)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2024, time.July, 15, 23, 59, 59, 999_000_000, time.UTC), p.To)
}

func TestResolvePeriodInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -3} {
		_, err := ResolvePeriod(m, 2024)
		assert.Error(t, err, "month %d", m)
	}
}

func TestPeriodContainsIsClosedInterval(t *testing.T) {
	p, err := ResolvePeriod(1, 2024)
	require.NoError(t, err)

	assert.True(t, p.Contains(p.From))
	assert.True(t, p.Contains(p.To))
	assert.True(t, p.Contains(time.Date(2024, time.January, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(p.From.Add(-time.Second)))
	assert.False(t, p.Contains(time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)))
}

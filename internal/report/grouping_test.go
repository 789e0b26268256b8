package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallClock(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, month, year int) Period {
	t.Helper()
	p, err := ResolvePeriod(month, year)
	require.NoError(t, err)
	return p
}

func TestGroupByPeriodTwoDaysTwoBuckets(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	punches := []Punch{
		{ID: 1, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindEntry},
		{ID: 2, At: wallClock(2024, time.January, 10, 18, 0), Kind: KindExit},
		{ID: 3, At: wallClock(2024, time.January, 11, 8, 30), Kind: KindEntry},
	}

	g := GroupByPeriod(punches, p)
	require.Len(t, g, 2)

	day10 := g["2024-01-10"]
	require.NotNil(t, day10)
	require.Len(t, day10.Entry, 1)
	require.Len(t, day10.Exit, 1)
	assert.Equal(t, "09:00", day10.Entry[0].Time)
	assert.Equal(t, "18:00", day10.Exit[0].Time)
	assert.Len(t, day10.Raw, 2)

	day11 := g["2024-01-11"]
	require.NotNil(t, day11)
	require.Len(t, day11.Entry, 1)
	assert.Empty(t, day11.Exit)
}

func TestGroupByPeriodKeepsTwoEarliestPerKind(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	punches := []Punch{
		{ID: 1, At: wallClock(2024, time.January, 10, 13, 0), Kind: KindEntry},
		{ID: 2, At: wallClock(2024, time.January, 10, 8, 0), Kind: KindEntry},
		{ID: 3, At: wallClock(2024, time.January, 10, 15, 0), Kind: KindEntry},
	}

	g := GroupByPeriod(punches, p)
	b := g["2024-01-10"]
	require.NotNil(t, b)

	require.Len(t, b.Entry, 2)
	assert.Equal(t, "08:00", b.Entry[0].Time)
	assert.Equal(t, "13:00", b.Entry[1].Time)
	// the third punch stays out of the grid but stays in Raw
	assert.Len(t, b.Raw, 3)
}

func TestGroupByPeriodClosedBounds(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	punches := []Punch{
		{ID: 1, At: p.From, Kind: KindEntry},                    // first instant, kept
		{ID: 2, At: p.From.Add(-time.Second), Kind: KindEntry},  // day before, dropped
		{ID: 3, At: wallClock(2024, time.January, 15, 23, 59), Kind: KindExit}, // last day, kept
		{ID: 4, At: wallClock(2024, time.January, 16, 0, 0), Kind: KindEntry},  // next period, dropped
	}

	g := GroupByPeriod(punches, p)
	require.Len(t, g, 2)
	assert.NotNil(t, g["2023-12-16"])
	assert.NotNil(t, g["2024-01-15"])
}

func TestGroupByPeriodDeterministicSelection(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	punches := []Punch{
		{ID: 5, At: wallClock(2024, time.January, 10, 12, 0), Kind: KindExit},
		{ID: 6, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindExit},
		{ID: 7, At: wallClock(2024, time.January, 10, 18, 0), Kind: KindExit},
	}

	first := GroupByPeriod(punches, p)
	second := GroupByPeriod(punches, p)
	assert.Equal(t, first["2024-01-10"].Exit, second["2024-01-10"].Exit)
	assert.Equal(t, int64(6), first["2024-01-10"].Exit[0].ID)
	assert.Equal(t, int64(5), first["2024-01-10"].Exit[1].ID)
}

// The HH:MM a user punched is the HH:MM the grid shows; no zone math.
func TestGroupByPeriodWallClockRoundTrip(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	at := wallClock(2024, time.January, 3, 7, 43)
	g := GroupByPeriod([]Punch{{ID: 9, At: at, Kind: KindEntry}}, p)

	b := g["2024-01-03"]
	require.NotNil(t, b)
	require.Len(t, b.Entry, 1)
	assert.Equal(t, "07:43", b.Entry[0].Time)
}

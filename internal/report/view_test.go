package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPeriodViewCoversWholeWindowNewestFirst(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	v := BuildPeriodView(Grouping{}, p, 1, 2024)

	// 2023-12-16 .. 2024-01-15 inclusive
	require.Len(t, v.Days, 31)
	assert.Equal(t, "2024-01-15", v.Days[0].DateKey)
	assert.Equal(t, "2023-12-16", v.Days[len(v.Days)-1].DateKey)
	assert.Equal(t, "15/01", v.Days[0].DateLabel)
}

func TestBuildPeriodViewFilledAndEmptySlots(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	url := "https://files.example/proof.jpg"
	g := GroupByPeriod([]Punch{
		{ID: 42, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindEntry, ProofURL: &url},
	}, p)

	v := BuildPeriodView(g, p, 1, 2024)

	var row DayRow
	for _, d := range v.Days {
		if d.DateKey == "2024-01-10" {
			row = d
		}
	}
	require.Equal(t, "2024-01-10", row.DateKey)

	e1 := row.Entry[0]
	assert.True(t, e1.Filled)
	assert.Equal(t, "42", e1.ID)
	assert.Equal(t, "09:00", e1.Time)
	require.NotNil(t, e1.ProofURL)
	assert.Equal(t, url, *e1.ProofURL)

	// empty cells carry a synthetic id a real id can never look like
	e2 := row.Entry[1]
	assert.False(t, e2.Filled)
	assert.Equal(t, "2024-01-10#E2", e2.ID)
	s1 := row.Exit[0]
	assert.Equal(t, "2024-01-10#S1", s1.ID)

	// and those synthetic ids parse back
	id, err := ParseIdentifier(e2.ID)
	require.NoError(t, err)
	_, ok := g.Resolve(id)
	assert.False(t, ok, "empty slot resolves to nothing")
}

func TestBuildPeriodViewWeekday(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	v := BuildPeriodView(Grouping{}, p, 1, 2024)
	// 2024-01-15 was a Monday
	assert.Equal(t, "seg", v.Days[0].Weekday)
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifierRealPassesThrough(t *testing.T) {
	id, err := ParseIdentifier("123")
	require.NoError(t, err)
	assert.True(t, id.IsReal())
	assert.Equal(t, "123", id.String())
}

func TestParseIdentifierSynthetic(t *testing.T) {
	id, err := ParseIdentifier("2024-01-10#09:00")
	require.NoError(t, err)
	assert.False(t, id.IsReal())
	assert.Equal(t, "2024-01-10#09:00", id.String())
}

func TestParseIdentifierLocaleDateLabel(t *testing.T) {
	id, err := ParseIdentifier("10/01/2024#09:00")
	require.NoError(t, err)
	// converted to the canonical key form
	assert.Equal(t, "2024-01-10#09:00", id.String())
}

func TestParseIdentifierEmptySlotLabel(t *testing.T) {
	id, err := ParseIdentifier("2024-01-10#E2")
	require.NoError(t, err)
	assert.False(t, id.IsReal())
}

func TestParseIdentifierRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "abc", "2024-01-10", "2024-13-40#09:00", "10-01-2024#9h", "#09:00"} {
		_, err := ParseIdentifier(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveSyntheticToRealAndStable(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	g := GroupByPeriod([]Punch{
		{ID: 42, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindEntry},
		{ID: 43, At: wallClock(2024, time.January, 10, 18, 0), Kind: KindExit},
	}, p)

	id, err := ParseIdentifier("2024-01-10#09:00")
	require.NoError(t, err)

	real, ok := g.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, int64(42), real)

	// stable: same grouping, same answer
	again, ok := g.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, real, again)
}

func TestResolveRealIsIdempotent(t *testing.T) {
	g := Grouping{}
	real, ok := g.Resolve(RealID(7))
	require.True(t, ok)
	assert.Equal(t, int64(7), real)
}

func TestResolveNoMatch(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	g := GroupByPeriod([]Punch{
		{ID: 42, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindEntry},
	}, p)

	_, ok := g.Resolve(SyntheticID("2024-01-10", "10:30"))
	assert.False(t, ok)

	_, ok = g.Resolve(SyntheticID("2024-01-11", "09:00"))
	assert.False(t, ok)

	// empty-slot labels never match a record
	id, err := ParseIdentifier("2024-01-10#E1")
	require.NoError(t, err)
	_, ok = g.Resolve(id)
	assert.False(t, ok)
}

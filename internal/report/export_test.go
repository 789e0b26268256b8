package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestExportCSV(t *testing.T) {
	p := mustPeriod(t, 1, 2024)
	g := GroupByPeriod([]Punch{
		{ID: 1, At: wallClock(2024, time.January, 10, 9, 0), Kind: KindEntry},
		{ID: 2, At: wallClock(2024, time.January, 10, 18, 0), Kind: KindExit},
	}, p)
	v := BuildPeriodView(g, p, 1, 2024)

	raw, err := ExportCSV(v)
	require.NoError(t, err)

	// encoded, not UTF-8: "Saída" must carry the 1252 í byte
	assert.Contains(t, string(raw), "Sa\xedda 1")

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	text := string(decoded)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 32) // header + one row per day

	assert.Equal(t, "Data;Dia;Entrada 1;Saída 1;Entrada 2;Saída 2", strings.TrimSpace(lines[0]))
	assert.Contains(t, text, "2024-01-10;qua;09:00;18:00;;")
}

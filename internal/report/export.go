package report

import (
	"bytes"
	"encoding/csv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ExportCSV renders the period grid as semicolon-separated CSV encoded in
// Windows-1252, the encoding legacy payroll importers expect. Rows follow
// the grid: newest day first, four time columns per day.
func ExportCSV(v PeriodView) ([]byte, error) {
	var b bytes.Buffer
	enc := charmap.Windows1252.NewEncoder()
	tw := transform.NewWriter(&b, enc)
	w := csv.NewWriter(tw)
	w.Comma = ';'

	if err := w.Write([]string{"Data", "Dia", "Entrada 1", "Saída 1", "Entrada 2", "Saída 2"}); err != nil {
		return nil, err
	}
	for _, d := range v.Days {
		rec := []string{
			d.DateKey,
			d.Weekday,
			d.Entry[0].Time,
			d.Exit[0].Time,
			d.Entry[1].Time,
			d.Exit[1].Time,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

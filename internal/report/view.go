package report

import "time"

// Slot labels as shown in the grid, two per kind per day.
var (
	entryLabels = [2]string{"E1", "E2"}
	exitLabels  = [2]string{"S1", "S2"}
)

var weekdayShort = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

type SlotView struct {
	ID       string  `json:"id"` // decimal punch id, or "YYYY-MM-DD#<label-or-time>" when synthetic
	Label    string  `json:"label"`
	Time     string  `json:"time,omitempty"`
	ProofURL *string `json:"proof_url,omitempty"`
	Filled   bool    `json:"filled"`
}

type DayRow struct {
	DateKey   string      `json:"date"`       // YYYY-MM-DD
	DateLabel string      `json:"date_label"` // DD/MM
	Weekday   string      `json:"weekday"`
	Entry     [2]SlotView `json:"entry"`
	Exit      [2]SlotView `json:"exit"`
}

type PeriodView struct {
	Month int      `json:"month"`
	Year  int      `json:"year"`
	From  string   `json:"from"` // YYYY-MM-DD
	To    string   `json:"to"`
	Days  []DayRow `json:"days"` // most recent day first
}

// BuildPeriodView lays the grouping out as the report grid: one row for
// every calendar day of the window (punched or not), newest first. Empty
// cells carry a synthetic identifier (date key + expected label) so the UI
// can still aim an action at them; it can never collide with a real id.
func BuildPeriodView(g Grouping, p Period, month, year int) PeriodView {
	v := PeriodView{
		Month: month,
		Year:  year,
		From:  p.From.Format(DateKeyLayout),
		To:    p.To.Format(DateKeyLayout),
	}

	start := time.Date(p.From.Year(), p.From.Month(), p.From.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.To.Year(), p.To.Month(), p.To.Day(), 0, 0, 0, 0, time.UTC)

	for cur := end; !cur.Before(start); cur = cur.AddDate(0, 0, -1) {
		key := cur.Format(DateKeyLayout)
		var b DayBucket
		if found := g[key]; found != nil {
			b = *found
		}
		row := DayRow{
			DateKey:   key,
			DateLabel: cur.Format("02/01"),
			Weekday:   weekdayShort[int(cur.Weekday())],
		}
		for i := 0; i < 2; i++ {
			row.Entry[i] = slotView(b.Entry, i, key, entryLabels[i])
			row.Exit[i] = slotView(b.Exit, i, key, exitLabels[i])
		}
		v.Days = append(v.Days, row)
	}
	return v
}

func slotView(slots []Slot, i int, dateKey, label string) SlotView {
	if i >= len(slots) {
		return SlotView{ID: dateKey + "#" + label, Label: label}
	}
	s := slots[i]
	return SlotView{
		ID:       RealID(s.ID).String(),
		Label:    label,
		Time:     s.Time,
		ProofURL: s.ProofURL,
		Filled:   true,
	}
}

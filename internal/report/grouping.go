package report

import (
	"sort"
	"time"
)

// DateKeyLayout is the canonical bucket key form, YYYY-MM-DD.
const DateKeyLayout = "2006-01-02"

type Kind string

const (
	KindEntry Kind = "entry"
	KindExit  Kind = "exit"
)

// Punch is the normalized record the engine consumes. At carries the wall
// clock the user punched, never converted across zones.
type Punch struct {
	ID       int64
	At       time.Time
	Kind     Kind
	ProofURL *string
}

// Slot is one display cell of the report grid.
type Slot struct {
	Time     string  `json:"time"` // HH:MM
	ID       int64   `json:"id"`
	ProofURL *string `json:"proof_url,omitempty"`
}

// DayBucket holds one calendar day of the grid: up to two slots per kind
// (the two earliest) plus every retained record of the day for id
// resolution.
type DayBucket struct {
	Entry []Slot
	Exit  []Slot
	Raw   []Punch
}

// Grouping maps date keys to day buckets. It is a plain value owned by the
// caller; recompute it after any mutation rather than patching it.
type Grouping map[string]*DayBucket

// GroupByPeriod buckets punches by local calendar day within the closed
// period window. Punches outside the window are dropped. Within a day each
// kind keeps only its two earliest slots, sorted ascending; the selection
// is deterministic so repeated grouping over the same records yields the
// same grid.
func GroupByPeriod(punches []Punch, p Period) Grouping {
	g := Grouping{}
	for _, pu := range punches {
		if !p.Contains(pu.At) {
			continue
		}
		key := pu.At.Format(DateKeyLayout)
		b := g[key]
		if b == nil {
			b = &DayBucket{}
			g[key] = b
		}
		b.Raw = append(b.Raw, pu)

		slot := Slot{Time: pu.At.Format(clockLayout), ID: pu.ID, ProofURL: pu.ProofURL}
		if pu.Kind == KindEntry {
			b.Entry = append(b.Entry, slot)
		} else {
			b.Exit = append(b.Exit, slot)
		}
	}
	for _, b := range g {
		b.Entry = capEarliest(b.Entry)
		b.Exit = capEarliest(b.Exit)
	}
	return g
}

func capEarliest(slots []Slot) []Slot {
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	if len(slots) > 2 {
		slots = slots[:2]
	}
	return slots
}

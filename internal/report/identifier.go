package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Identifier is either the id of a persisted punch or a synthetic slot key
// (date + wall-clock time) for a grid cell that had no id when the grid was
// rendered. Callers must resolve to a real id before any mutation call.
type Identifier struct {
	real    int64
	dateKey string // YYYY-MM-DD, set only for synthetic ids
	clock   string // HH:MM
}

func RealID(id int64) Identifier { return Identifier{real: id} }

func SyntheticID(dateKey, clock string) Identifier {
	return Identifier{dateKey: dateKey, clock: clock}
}

func (id Identifier) IsReal() bool { return id.real != 0 }

// String renders the wire form: the decimal id, or "YYYY-MM-DD#HH:MM".
func (id Identifier) String() string {
	if id.IsReal() {
		return strconv.FormatInt(id.real, 10)
	}
	return id.dateKey + "#" + id.clock
}

// ParseIdentifier accepts a decimal punch id, a synthetic key
// "YYYY-MM-DD#HH:MM", or the locale label form "DD/MM/YYYY#HH:MM" (which is
// converted to the canonical key). A real id passes through unchanged.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identifier{}, ErrInvalid("empty identifier")
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
		return RealID(id), nil
	}

	dateKey, clock, ok := strings.Cut(s, "#")
	if !ok {
		return Identifier{}, ErrInvalid(fmt.Sprintf("unrecognized identifier %q", s))
	}

	if strings.Contains(dateKey, "/") {
		// DD/MM/YYYY label as seen in the grid
		p := strings.Split(dateKey, "/")
		if len(p) != 3 {
			return Identifier{}, ErrInvalid(fmt.Sprintf("bad date label %q", dateKey))
		}
		d, errD := strconv.Atoi(p[0])
		m, errM := strconv.Atoi(p[1])
		y, errY := strconv.Atoi(p[2])
		if errD != nil || errM != nil || errY != nil {
			return Identifier{}, ErrInvalid(fmt.Sprintf("bad date label %q", dateKey))
		}
		dateKey = fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
	if _, err := time.Parse(DateKeyLayout, dateKey); err != nil {
		return Identifier{}, ErrInvalid(fmt.Sprintf("bad date key %q", dateKey))
	}
	if !isSlotLabel(clock) {
		if _, err := ParseClock(clock); err != nil {
			return Identifier{}, err
		}
	}
	return SyntheticID(dateKey, clock), nil
}

// isSlotLabel recognizes the empty-cell form "date#E1" etc. Such an
// identifier parses fine but can never resolve to a record, which is how an
// action against an empty slot is told apart from one against a real punch.
func isSlotLabel(s string) bool {
	switch s {
	case "E1", "E2", "S1", "S2":
		return true
	}
	return false
}

// Resolve maps an identifier to the real punch id it denotes within this
// grouping. Real ids pass through as-is. Synthetic ids match the day's raw
// record whose wall-clock HH:MM equals the key's time exactly; resolution
// is stable as long as the grouping is not recomputed.
func (g Grouping) Resolve(id Identifier) (int64, bool) {
	if id.IsReal() {
		return id.real, true
	}
	b := g[id.dateKey]
	if b == nil {
		return 0, false
	}
	for _, r := range b.Raw {
		if r.At.Format(clockLayout) == id.clock {
			return r.ID, true
		}
	}
	return 0, false
}

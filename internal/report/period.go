package report

import "time"

// Period is the closed payroll window [From, To].
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ResolvePeriod maps a target (month, year) to the payroll cycle that ends
// in it: the 16th of the preceding month at midnight through the 15th of
// the target month at 23:59:59.999. January rolls back to December of the
// previous year via time.Date's calendar normalization.
func ResolvePeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, ErrInvalid("month must be between 1 and 12")
	}
	from := time.Date(year, time.Month(month-1), 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month), 15, 23, 59, 59, 999_000_000, time.UTC)
	return Period{From: from, To: to}, nil
}

// Contains reports whether t falls inside the closed window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// Package report computes derived views over punch records: the daily
// worked/overtime summary, the 16th-to-15th payroll period window, and the
// per-day grouping used by the report grid. Everything here is pure; the
// caller fetches the records and owns the result.
package report

import (
	"fmt"
	"sort"
	"strconv"
)

// StandardWorkdayMinutes is the contracted daily span (6h); anything beyond
// it between the first and last punch counts as overtime.
const StandardWorkdayMinutes = 6 * 60

const clockLayout = "15:04"

type Summary struct {
	WorkedMinutes   int `json:"worked_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`
}

// Summarize computes the day summary from "HH:MM" punch times.
//
// Punches are sorted and paired by position, not by kind: (0,1), (2,3), ...
// Each complete pair adds end-start minutes; a trailing unpaired punch adds
// nothing. Pairing stays positional even when kinds are out of order, and a
// pair whose end precedes its start subtracts minutes — both inherited from
// the original computation and pinned by tests, pending a policy decision.
// Overtime is the first-to-last span minus the standard workday, floored at
// zero. Fewer than two punches yields a zero summary.
func Summarize(times []string) (Summary, error) {
	minutes := make([]int, 0, len(times))
	for _, t := range times {
		m, err := ParseClock(t)
		if err != nil {
			return Summary{}, err
		}
		minutes = append(minutes, m)
	}
	if len(minutes) < 2 {
		return Summary{}, nil
	}

	// zero-padded HH:MM sorts lexicographically == chronologically, so
	// sorting the minute values directly is equivalent
	sort.Ints(minutes)

	worked := 0
	for i := 0; i+1 < len(minutes); i += 2 {
		worked += minutes[i+1] - minutes[i]
	}

	span := minutes[len(minutes)-1] - minutes[0]
	overtime := span - StandardWorkdayMinutes
	if overtime < 0 {
		overtime = 0
	}

	return Summary{WorkedMinutes: worked, OvertimeMinutes: overtime}, nil
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalid(fmt.Sprintf("time must be HH:MM, got %q", s))
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh < 0 || hh > 23 {
		return 0, ErrInvalid(fmt.Sprintf("time must be HH:MM, got %q", s))
	}
	mm, err := strconv.Atoi(s[3:])
	if err != nil || mm < 0 || mm > 59 {
		return 0, ErrInvalid(fmt.Sprintf("time must be HH:MM, got %q", s))
	}
	return hh*60 + mm, nil
}

// FormatMinutes renders a minute total as "HHh MMm" the way the UI shows it.
func FormatMinutes(m int) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02dh %02dm", sign, m/60, m%60)
}

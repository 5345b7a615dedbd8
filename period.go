package minimarket

import (
	"fmt"
	"strings"
	"time"
)

// Period is a predefined reporting window ending now.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "today"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "today", "day":
		return Daily, nil
	case "week":
		return Weekly, nil
	case "month":
		return Monthly, nil
	case "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", s)
	}
}

// Range is a time window, boundaries included.
type Range struct{ From, To time.Time }

// Range returns the window the period covers when it ends at now: today
// since midnight, the last seven days for a week, and since the first of
// the month or of the year otherwise.
func (p Period) Range(now time.Time) Range {
	switch p {
	case Daily:
		y, m, d := now.Date()
		return Range{From: time.Date(y, m, d, 0, 0, 0, 0, now.Location()), To: now}
	case Weekly:
		return Range{From: now.AddDate(0, 0, -7), To: now}
	case Monthly:
		y, m, _ := now.Date()
		return Range{From: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), To: now}
	case Yearly:
		return Range{From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), To: now}
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Contains reports whether t falls inside the range (boundaries included).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package temporal

import (
	"strconv"
	"strings"
	"time"

	perr "timebanner/internal/platform/errors"
)

// Fixed conversions for the calendar-ish units
const (
	durDay  = 24 * time.Hour
	durWeek = 7 * durDay

	// average Gregorian month, round(86400000 * 365.25 / 12) milliseconds
	durMonth = 2629800000 * time.Millisecond
)

// durYear converts a year count. A year is 365 days plus a 6 hour leap
// compensation per year, but the compensation only applies to positive
// counts. Negative years get none. That asymmetry is a preserved contract,
// exercised explicitly in tests
func durYear(n int64) time.Duration {
	d := time.Duration(n) * 365 * durDay
	if n > 0 {
		d += time.Duration(n) * 6 * time.Hour
	}
	return d
}

// unitGroup is one of the seven duration units with its accepted spellings.
// Spellings are matched exactly and case sensitively, longest first
type unitGroup struct {
	name      string
	spellings []string
	convert   func(n int64) time.Duration
}

// duration units in the strictly descending order the grammar requires
var unitGroups = []unitGroup{
	{"year", []string{"years", "year", "yrs", "yr", "y"}, durYear},
	{"month", []string{"months", "month", "mon"}, func(n int64) time.Duration { return time.Duration(n) * durMonth }},
	{"week", []string{"weeks", "week", "wks", "wk", "w"}, func(n int64) time.Duration { return time.Duration(n) * durWeek }},
	{"day", []string{"days", "day", "d"}, func(n int64) time.Duration { return time.Duration(n) * durDay }},
	{"hour", []string{"hours", "hour", "hrs", "hr", "h"}, func(n int64) time.Duration { return time.Duration(n) * time.Hour }},
	{"minute", []string{"minutes", "minute", "mins", "min", "m"}, func(n int64) time.Duration { return time.Duration(n) * time.Minute }},
	{"second", []string{"seconds", "second", "secs", "sec", "s"}, func(n int64) time.Duration { return time.Duration(n) * time.Second }},
}

// ParseDuration parses a signed multi-unit relative duration such as
// "1y2mon3w4d5h6m7s" or "-3 days". Each unit group is optional but must
// appear in descending magnitude order. A leading sign negates the entire
// accumulated delta exactly once after summation, never per unit.
// Empty or whitespace-only input yields zero
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	rs := []rune(s)
	i := 0

	negate := false
	switch rs[i] {
	case '+':
		i++
	case '-':
		negate = true
		i++
	}

	var total time.Duration
	nextGroup := 0 // index of the next unit group allowed to appear

	for i < len(rs) {
		// skip spaces between groups
		for i < len(rs) && rs[i] == ' ' {
			i++
		}
		if i == len(rs) {
			break
		}

		// number
		numStart := i
		for i < len(rs) && isDigit(rs[i]) {
			i++
		}
		if i == numStart {
			return 0, perr.Parsef("duration %q: expected a number at %q", s, string(rs[numStart:]))
		}
		numText := string(rs[numStart:i])

		// optional space between number and unit
		for i < len(rs) && rs[i] == ' ' {
			i++
		}

		// unit word
		unitStart := i
		for i < len(rs) && isLetter(rs[i]) {
			i++
		}
		if i == unitStart {
			return 0, perr.Parsef("duration %q: number %q has no unit", s, numText)
		}
		unitText := string(rs[unitStart:i])

		gi := matchUnit(unitText)
		if gi < 0 {
			return 0, perr.Parsef("duration %q: unknown unit %q", s, unitText)
		}
		if gi < nextGroup {
			return 0, perr.Parsef("duration %q: unit %q out of descending order", s, unitText)
		}
		nextGroup = gi + 1

		n, err := strconv.ParseInt(numText, 10, 64)
		if err != nil {
			return 0, perr.Parsef("duration %q: %s count %q is not a valid integer", s, unitGroups[gi].name, numText)
		}

		total += unitGroups[gi].convert(n)
	}

	// sign applies once to the whole accumulated delta
	if negate {
		total = -total
	}
	return total, nil
}

// matchUnit returns the unit group index whose spelling equals word, or -1
func matchUnit(word string) int {
	for gi, g := range unitGroups {
		for _, sp := range g.spellings {
			if word == sp {
				return gi
			}
		}
	}
	return -1
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

package temporal

import (
	"strconv"
	"strings"
	"time"

	perr "timebanner/internal/platform/errors"
)

// DateOrder selects the semantic order of the three leading date segments
type DateOrder int

// Supported date segment orders
const (
	OrderYMD DateOrder = iota
	OrderMDY
	OrderDMY
)

// ParseDateOrder maps a config or query value to a DateOrder
func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ymd":
		return OrderYMD, nil
	case "mdy":
		return OrderMDY, nil
	case "dmy":
		return OrderDMY, nil
	}
	return OrderYMD, perr.Validationf("date order %q must be one of ymd, mdy, dmy", s)
}

func (o DateOrder) String() string {
	switch o {
	case OrderMDY:
		return "mdy"
	case OrderDMY:
		return "dmy"
	default:
		return "ymd"
	}
}

// Fields holds the civil calendar fields of an absolute expression together
// with the resolved zone offset. Transient, built per request
type Fields struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	OffsetSeconds        int
	Abbrev               string
}

// separator set shared by date and time segments
func isSeparator(r rune) bool {
	switch r {
	case ' ', '-', '.', ',', ':':
		return true
	}
	return false
}

// ParseAbsolute parses a date-time literal such as "2023-06-14-3" or
// "2023.06.14.15-45-30,123-CST". Three date segments in the configured
// order, up to three time segments, an optional fractional segment that is
// parsed and discarded, and an optional trailing 2-5 letter timezone
// abbreviation resolved against tbl. Strict mode additionally requires
// zero-padded segments and rejects the fractional segment
func ParseAbsolute(s string, order DateOrder, strict bool, tbl *AbbrevTable) (Fields, error) {
	segs, err := splitSegments(s)
	if err != nil {
		return Fields{}, err
	}

	var f Fields
	f.Abbrev = "UTC"

	// trailing abbreviation
	if n := len(segs); n > 0 && isAlpha(segs[n-1]) {
		abbr := segs[n-1]
		if len(abbr) < 2 || len(abbr) > 5 {
			return Fields{}, perr.Parsef("timezone abbreviation %q must be 2-5 letters", abbr)
		}
		off, err := tbl.Lookup(abbr)
		if err != nil {
			return Fields{}, err
		}
		f.Abbrev = abbr
		f.OffsetSeconds = off
		segs = segs[:n-1]
	}

	if len(segs) < 3 {
		return Fields{}, perr.Parsef("expression %q needs three date segments", s)
	}
	if len(segs) > 7 {
		return Fields{}, perr.Parsef("expression %q has too many segments", s)
	}

	nums := make([]int, len(segs))
	for i, seg := range segs {
		n, err := parseSegment(seg, strict, i == 0 && order == OrderYMD, i == 2 && order != OrderYMD)
		if err != nil {
			return Fields{}, err
		}
		nums[i] = n
	}

	switch order {
	case OrderMDY:
		f.Month, f.Day, f.Year = nums[0], nums[1], nums[2]
	case OrderDMY:
		f.Day, f.Month, f.Year = nums[0], nums[1], nums[2]
	default:
		f.Year, f.Month, f.Day = nums[0], nums[1], nums[2]
	}

	// up to three time segments, the fourth is a fractional remainder that
	// is recognized but discarded
	rest := nums[3:]
	switch len(rest) {
	case 0:
	case 1:
		f.Hour = rest[0]
	case 2:
		f.Hour, f.Minute = rest[0], rest[1]
	case 3:
		f.Hour, f.Minute, f.Second = rest[0], rest[1], rest[2]
	case 4:
		if strict {
			return Fields{}, perr.Parsef("expression %q has a fractional segment, not allowed in strict mode", s)
		}
		f.Hour, f.Minute, f.Second = rest[0], rest[1], rest[2]
	}

	if err := f.validate(); err != nil {
		return Fields{}, err
	}
	return f, nil
}

// isAlpha reports whether seg is non-empty and all ASCII letters
func isAlpha(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

// splitSegments splits on the separator set and rejects empty segments from
// consecutive separators
func splitSegments(s string) ([]string, error) {
	segs := strings.FieldsFunc(s, isSeparator)
	// FieldsFunc drops empties, so recount to detect consecutive separators
	count := 1
	for _, r := range s {
		if isSeparator(r) {
			count++
		}
	}
	if s == "" || count != len(segs) {
		return nil, perr.Parsef("expression %q has an empty segment", s)
	}
	return segs, nil
}

// parseSegment converts one numeric segment. Strict mode requires two digit
// zero padding (four for the year segment)
func parseSegment(seg string, strict, isYearFirst, isYearLast bool) (int, error) {
	for _, r := range seg {
		if !isDigit(r) {
			return 0, perr.Parsef("segment %q is not a valid integer", seg)
		}
	}
	if strict {
		want := 2
		if isYearFirst || isYearLast {
			want = 4
		}
		if len(seg) != want {
			return 0, perr.Parsef("segment %q must be %d digits in strict mode", seg, want)
		}
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, perr.Parsef("segment %q is not a valid integer", seg)
	}
	return n, nil
}

// validate rejects impossible calendar combinations explicitly, the stdlib
// time.Date silently normalizes out of range fields
func (f Fields) validate() error {
	if f.Year < 0 || f.Year > 9999 {
		return perr.Parsef("year %d out of range 0-9999", f.Year)
	}
	if f.Month < 1 || f.Month > 12 {
		return perr.Parsef("month %d out of range 1-12", f.Month)
	}
	if f.Day < 1 || f.Day > daysInMonth(f.Year, f.Month) {
		return perr.Parsef("day %d invalid for %04d-%02d", f.Day, f.Year, f.Month)
	}
	if f.Hour > 23 {
		return perr.Parsef("hour %d out of range 0-23", f.Hour)
	}
	if f.Minute > 59 {
		return perr.Parsef("minute %d out of range 0-59", f.Minute)
	}
	if f.Second > 59 {
		return perr.Parsef("second %d out of range 0-59", f.Second)
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}

// Instant converts the validated fields into a UTC instant using the
// resolved zone offset
func (f Fields) Instant() time.Time {
	loc := time.FixedZone(f.Abbrev, f.OffsetSeconds)
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, loc).UTC()
}

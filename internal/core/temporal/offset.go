// Package temporal converts loosely formatted time expressions into
// normalized UTC instants
package temporal

import (
	"strconv"

	perr "timebanner/internal/platform/errors"
)

// ParseOffset parses a UTC offset token of shape [sign]HH[:MM] into signed
// whole seconds, negative meaning west of Greenwich. The sign is one of
// '+', '-' or '±'. A '±' token marks a variable or unspecified offset in the
// reference data and always resolves to 0 regardless of its digits
func ParseOffset(token string) (int, error) {
	rs := []rune(token)
	if len(rs) == 0 {
		return 0, perr.Parsef("offset token is empty, want [sign]HH[:MM]")
	}

	sign := 0
	switch rs[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	case '±':
		sign = 0
	default:
		return 0, perr.Parsef("offset %q must start with '+', '-' or '±'", token)
	}
	rs = rs[1:]

	if len(rs) < 2 || !isDigit(rs[0]) || !isDigit(rs[1]) {
		return 0, perr.Parsef("offset %q must have a two digit hour", token)
	}
	hours, _ := strconv.Atoi(string(rs[:2]))
	rs = rs[2:]

	minutes := 0
	if len(rs) > 0 {
		if rs[0] != ':' || len(rs) != 3 || !isDigit(rs[1]) || !isDigit(rs[2]) {
			return 0, perr.Parsef("offset %q must end with a two digit :MM minute", token)
		}
		minutes, _ = strconv.Atoi(string(rs[1:]))
	}

	// variable offsets resolve to zero but must still be well formed
	if sign == 0 {
		return 0, nil
	}

	if hours > 23 {
		return 0, perr.Parsef("offset %q hour out of range, want 00-23", token)
	}
	if minutes > 59 {
		return 0, perr.Parsef("offset %q minute out of range, want 00-59", token)
	}

	return sign * (hours*3600 + minutes*60), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

package validate

import (
	"regexp"
	"strconv"
	"time"
)

// ISO 8601 grammar in its lenient form. RE2 has no backreferences, so the
// date separator and the time separator are spelled out as variants: the
// day repeats the month's separator and the seconds repeat the minutes'.
const (
	isoZone     = `(?:[zZ]|[+-](?:[01]\d|2[0-3]):?(?:[0-5]\d)?)`
	isoTimeSep  = `[T\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`
	isoColonHMS = `(?:[01]\d|2[0-3]):[0-5]\d(?:[.,]\d+)?(?::[0-5]\d(?:[.,]\d+)?)?`
	isoPlainHMS = `(?:(?:(?:[01]\d|2[0-3])(?:[0-5]\d)?|24:?00)(?:[.,]\d+)?)?(?:[0-5]\d(?:[.,]\d+)?)?`
	isoTime     = isoTimeSep + `(?:` + isoColonHMS + `|` + isoPlainHMS + `)` + isoZone + `?`
	isoWeek     = `W(?:[0-4]\d|5[0-3])(?:-?[1-7])?`
	isoOrdinal  = `(?:00[1-9]|0[1-9]\d|[12]\d{2}|3(?:[0-5]\d|6[1-6]))`
	isoDay      = `(?:[12]\d|0[1-9]|3[01])`
	isoMonth    = `(?:0[1-9]|1[0-2])`
)

var (
	isoDateRegex = regexp.MustCompile(`^[+-]?\d{4}(?:` +
		isoDateBody("-") + `|` + isoDateBody("") + `)?$`)

	// isoFractionColon catches a fraction followed by a separator colon.
	isoFractionColon = regexp.MustCompile(`[.,]\d+:`)
)

func isoDateBody(sep string) string {
	return sep + `(?:` + isoMonth + `(?:` + sep + isoDay + `)?|` + isoWeek + `|` + isoOrdinal + `)(?:` + isoTime + `)?`
}

// IsISO8601 reports whether value is an ISO 8601 date, optionally followed by
// a time and an offset. Only the grammar is checked, so a day beyond the end
// of its month passes.
func IsISO8601(value string) bool {
	if !isoDateRegex.MatchString(value) || isoFractionColon.MatchString(value) {
		return false
	}

	// A bare "YYYYMM" is ambiguous and rejected.
	rest := value[yearLen(value):]
	if len(rest) >= 2 && isDigit(rest[0]) && isDigit(rest[1]) && (len(rest) == 2 || !isWordByte(rest[2])) {
		return false
	}
	return true
}

// ParseISODate validates value with [IsISO8601] and returns its calendar date
// (UTC midnight of the written year, month and day). A missing month or day
// defaults to 1 and an overflowing day rolls into the next month. Week and
// ordinal dates are valid but carry no calendar date, so the result is nil.
func ParseISODate(value string) (*time.Time, bool) {
	if !IsISO8601(value) {
		return nil, false
	}
	return calendarDate(value), true
}

func calendarDate(value string) *time.Time {
	n := yearLen(value)
	year, _ := strconv.Atoi(value[:n])
	month, day := 1, 1

	rest := value[n:]
	if rest != "" {
		extended := rest[0] == '-'
		if extended {
			rest = rest[1:]
		}

		switch digits := leadingDigits(rest); {
		case digits == 2:
			month, _ = strconv.Atoi(rest[:2])
			if extended && len(rest) >= 5 && rest[2] == '-' {
				day, _ = strconv.Atoi(rest[3:5])
			}
		case digits == 4 && !extended:
			month, _ = strconv.Atoi(rest[:2])
			day, _ = strconv.Atoi(rest[2:4])
		default:
			return nil
		}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &date
}

// yearLen is the length of the signed four-digit year prefix.
func yearLen(value string) int {
	if value != "" && (value[0] == '+' || value[0] == '-') {
		return 5
	}
	return 4
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordByte(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

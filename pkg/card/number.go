package card

import (
	"strconv"
	"strings"
)

// Number is a parsed numeric attribute. Known is false when the text had no
// numeric prefix.
type Number struct {
	Value float64
	Text  string
	Known bool
}

// ParseNumber parses raw leniently, see ParseFloat.
func ParseNumber(raw string) Number {
	v, ok := ParseFloat(raw)
	return Number{Value: v, Text: strings.TrimSpace(raw), Known: ok}
}

// ParseFloat accepts the longest leading decimal prefix of raw, so "4.5/5"
// reads as 4.5 and "12000 INR" as 12000. It reports false when no digits
// lead the text.
func ParseFloat(raw string) (float64, bool) {
	prefix := numericPrefix(strings.TrimSpace(raw), true)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt accepts the leading integer prefix of raw. "7.9" reads as 7.
func ParseInt(raw string) (int64, bool) {
	prefix := numericPrefix(strings.TrimSpace(raw), false)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func numericPrefix(s string, allowFraction bool) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if allowFraction && end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && s[frac] >= '0' && s[frac] <= '9' {
			frac++
		}
		if frac > end+1 {
			digits += frac - end - 1
			end = frac
		}
	}
	if digits == 0 {
		return ""
	}
	return s[:end]
}

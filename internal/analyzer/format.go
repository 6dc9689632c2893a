package analyzer

import (
	"math"
	"strconv"
)

var magnitudes = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
	{1e3, "thousand"},
}

// FormatMagnitude renders large quantities with a word suffix and one decimal,
// e.g. 2500 -> "2.5 thousand". Values below 1000 are rounded to an integer.
func FormatMagnitude(v float64) string {
	for _, m := range magnitudes {
		if v >= m.threshold {
			return toFixed1(v/m.threshold) + " " + m.suffix
		}
	}
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

// TimeToCrackString picks the largest unit whose value is at least one.
func TimeToCrackString(t TimeToCrack) string {
	switch {
	case t.Years >= 1:
		return FormatMagnitude(t.Years) + " years"
	case t.Days >= 1:
		return FormatMagnitude(t.Days) + " days"
	case t.Hours >= 1:
		return FormatMagnitude(t.Hours) + " hours"
	case t.Minutes >= 1:
		return FormatMagnitude(t.Minutes) + " minutes"
	default:
		return FormatMagnitude(t.Seconds) + " seconds"
	}
}

// toFixed1 renders v with one decimal the way JavaScript's toFixed(1) does:
// rounding works on the exact binary value, so 1.45 (stored just below 1.45)
// gives "1.4", while exact ties such as 2.25 round up rather than to even.
// Magnitudes of 1e21 and above switch to the shortest exponent form.
func toFixed1(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case isTie(v):
		v = math.Nextafter(v, math.Inf(1))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// isTie reports whether v sits exactly halfway between two one-decimal values.
// Only multiples of 0.25 with an odd quarter count are representable ties.
func isTie(v float64) bool {
	q := v * 4
	return q == math.Trunc(q) && math.Mod(q, 2) == 1
}

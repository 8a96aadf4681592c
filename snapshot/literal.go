package snapshot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal renders c as a C floating point literal. The text always carries a
// decimal point, so a compiler never reads it as an integer constant.
//
// Integer numbers keep their digits. Everything else is rendered the way
// Python prints a float.
func (c Component) Literal() string {
	s := string(c)
	if isInteger(s) {
		return normalizeInt(s) + ".0"
	}

	f, e := c.Float64()
	if e != nil {
		return withDecimal(s)
	}
	return withDecimal(reprFloat(f))
}

func isInteger(s string) bool {
	return s != "" && !strings.ContainsAny(s, ".eE")
}

func normalizeInt(s string) string {
	neg := strings.HasPrefix(s, "-")
	d := strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if d == "" {
		return "0"
	}
	if neg {
		return "-" + d
	}
	return d
}

// reprFloat formats f with the shortest digits that round-trip, in positional
// notation unless the decimal exponent is below -4 or above 15.
func reprFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	var sign string
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}

	e := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(e, 'e')
	digits := strings.Replace(e[:i], ".", "", 1)
	exp, _ := strconv.Atoi(e[i+1:])

	// f == 0.<digits> * 10^decpt
	decpt := exp + 1
	if decpt <= -4 || decpt > 16 {
		m := digits[:1]
		if len(digits) > 1 {
			m += "." + digits[1:]
		}
		es := "+"
		if exp < 0 {
			es = "-"
			exp = -exp
		}
		return fmt.Sprintf("%s%se%s%02d", sign, m, es, exp)
	}

	switch {
	case decpt <= 0:
		return sign + "0." + strings.Repeat("0", -decpt) + digits
	case decpt < len(digits):
		return sign + digits[:decpt] + "." + digits[decpt:]
	default:
		return sign + digits + strings.Repeat("0", decpt-len(digits)) + ".0"
	}
}

// withDecimal puts ".0" into s when it has no decimal point, ahead of the
// exponent if there is one.
func withDecimal(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

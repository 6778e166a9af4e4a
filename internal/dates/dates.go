// Package dates expands two-digit statement years to four digits.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// cutoff splits the two-digit year window: values at or below it land in the
// reference year's century, values above in the previous one.
const cutoff = 50

// shortDate matches <day><sep><month><sep><yy> where sep is one of / - . or
// a space. Go regexps have no backreferences, so both separators are
// captured and compared by the caller.
var shortDate = regexp.MustCompile(`^(\d{1,2})([/\-. ])(\d{1,2})([/\-. ])(\d{2})$`)

// Expand rewrites a day/month/two-digit-year date to a four-digit year.
// The century is inferred from refYear: yy <= 50 lands in refYear's century,
// anything above in the previous one. sep overrides the output separator;
// when empty, the input's own separator is reused. Strings that do not match
// the pattern, including mixed separators, come back unchanged.
func Expand(s, sep string, refYear int) string {
	m := shortDate.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return s
	}

	if sep == "" {
		sep = m[2]
	}

	yy, err := strconv.Atoi(m[5])
	if err != nil {
		return s
	}

	century := refYear / 100 * 100
	year := century + yy
	if yy > cutoff {
		year -= 100
	}

	return fmt.Sprintf("%s%s%s%s%d", m[1], sep, m[3], sep, year)
}

// ExpandNow expands using the current calendar year as the reference.
func ExpandNow(s, sep string) string {
	return Expand(s, sep, time.Now().Year())
}

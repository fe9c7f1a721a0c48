package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// EraBCE is the era marker that negates a year literal.
const EraBCE = "BCE"

// ParseYear decodes a year literal of the form "<integer> <era>".
// "399 BCE" is -399 and "1724" is 1724. Any other era marker leaves the
// year positive. Malformed input reports false.
func ParseYear(literal string) (int, bool) {
	fields := strings.Fields(literal)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, false
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}

	if len(fields) == 2 && fields[1] == EraBCE {
		year = -year
	}
	return year, true
}

// FormatYear renders a signed year back into the literal convention.
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d %s", -year, EraBCE)
	}
	return strconv.Itoa(year)
}

// Package duration converts free-text travel durations from the destination
// catalog ("3 days", "5 months", "5-6 years") into a day count.
package duration

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(day|month|year|days|months|years)`)
	singleRe = regexp.MustCompile(`(\d+)\s*(day|month|year|days|months|years)`)
)

// Days parses text into a canonical day count. Ranges like "5-6 years" use
// the larger value. Months count as 30 days and years as 365, with no
// calendar awareness. Text with no recognizable value returns 0, which
// stands for "unknown duration"; Days never fails.
func Days(text string) int {
	text = strings.ToLower(text)

	if strings.Contains(text, "-") {
		if m := rangeRe.FindStringSubmatch(text); m != nil {
			maxValue, _ := strconv.Atoi(m[2])
			return toDays(maxValue, m[3])
		}
		return 0
	}

	if m := singleRe.FindStringSubmatch(text); m != nil {
		value, _ := strconv.Atoi(m[1])
		return toDays(value, m[2])
	}
	return 0
}

func toDays(value int, unit string) int {
	switch strings.TrimSuffix(unit, "s") {
	case "day":
		return value
	case "month":
		return value * 30
	case "year":
		return value * 365
	default:
		return value
	}
}

package flights

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// FormatDuration converts an ISO-8601 duration token such as "PT2H30M"
// into a spoken phrase like "2 hours and 30 minutes". Malformed input and
// zero durations yield "".
func FormatDuration(duration string) string {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return ""
	}

	hours := 0
	minutes := 0
	if match[1] != "" {
		hours, _ = strconv.Atoi(match[1])
	}
	if match[2] != "" {
		minutes, _ = strconv.Atoi(match[2])
	}

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, plural(minutes)))
	}
	return strings.Join(parts, " and ")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// Package timeutil parses the human-friendly history windows used by
// listing filters.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      day,
		"day":    day,
		"days":   day,
		"w":      7 * day,
		"wk":     7 * day,
		"week":   7 * day,
		"weeks":  7 * day,
		"mo":     30 * day,
		"month":  30 * day,
		"months": 30 * day,
		"y":      365 * day,
		"year":   365 * day,
		"years":  365 * day,
	}
)

// ParseWindow parses a lookback like "2w", "90d", or "1mo2w" into a
// duration. Entries are day-grained, so sub-day units are not accepted.
func ParseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty window")
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must cover at least one day")
	}
	return total, nil
}

// WindowStart returns the first day covered by a window ending now.
func WindowStart(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}

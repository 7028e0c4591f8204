// Package timeutil parses human-friendly focus durations.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultFocus is the fallback focus length used when none is provided.
	DefaultFocus = "25m"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseMinutes parses a focus length such as "25", "25m", or "1h30m" and
// returns whole minutes. Bare numbers are minutes. Empty input uses the
// default of 25 minutes. Sub-minute precision is rejected rather than
// silently rounded.
func ParseMinutes(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultFocus
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("duration must be greater than zero")
		}
		return n, nil
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	if total%time.Minute != 0 {
		return 0, fmt.Errorf("focus durations are whole minutes, got %s", total)
	}
	return int(total / time.Minute), nil
}

// FormatMinutes renders minutes using hour/minute tokens, e.g. "1h30m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

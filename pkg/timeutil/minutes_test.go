package timeutil

import "testing"

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 25},
		{"25", 25},
		{"25m", 25},
		{" 50 min ", 50},
		{"1h", 60},
		{"1h30m", 90},
		{"2hrs", 120},
		{"90 minutes", 90},
	}
	for _, tc := range cases {
		got, err := ParseMinutes(tc.input)
		if err != nil {
			t.Errorf("ParseMinutes(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseMinutesRejects(t *testing.T) {
	for _, input := range []string{"0", "-5", "abc", "5x", "10s", "1.5h"} {
		if got, err := ParseMinutes(input); err == nil {
			t.Errorf("ParseMinutes(%q) = %d, expected error", input, got)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{25, "25m"},
		{60, "1h"},
		{90, "1h30m"},
	}
	for _, tc := range cases {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

package duration

import (
	"testing"
	"time"
)

func TestParseRejectsWrongLengths(t *testing.T) {
	inputs := []string{
		"",
		"0:00",
		"1:2:3",
		"000:00",
		"0:00:00",
		"00:00:00:00",
		"00:0",
	}
	for _, s := range inputs {
		if _, ok := Parse(s); ok {
			t.Fatalf("Parse(%q) accepted a string of invalid length", s)
		}
	}
}

func TestParseRejectsInvalidFields(t *testing.T) {
	inputs := []string{
		"60:00",    // minutes out of range
		"00:60",    // seconds out of range
		"00:90",    // fields are range-checked, not normalized
		"24:00:00", // hours out of range
		"99:99",
		"ab:cd",
		"0a:00",
		"00-00",
		"00:00-00",
		":0:00",
		"-1:00",
	}
	for _, s := range inputs {
		if _, ok := Parse(s); ok {
			t.Fatalf("Parse(%q) accepted an invalid duration", s)
		}
	}
}

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"00:00", 0},
		{"00:05", 5 * time.Second},
		{"01:00", time.Minute},
		{"59:59", 59*time.Minute + 59*time.Second},
		{"00:01:00", time.Minute},
		{"01:30:00", 90 * time.Minute},
		{"12:00:00", 12 * time.Hour},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if !ok {
			t.Fatalf("Parse(%q) rejected a valid duration", c.in)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{3599 * time.Second, "59:59"},
		{time.Hour, "01:00:00"},
		{86399 * time.Second, "23:59:59"},
		{100 * time.Hour, "100:00:00"}, // hours are not capped
		{-5 * time.Second, "00:00"},    // negative clamps to zero
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Fatalf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatParseAsymmetry(t *testing.T) {
	// Format never emits an hours field below one hour, even when the
	// input carried one.
	d, ok := Parse("00:30:00")
	if !ok {
		t.Fatalf("Parse rejected 00:30:00")
	}
	if got := Format(d); got != "30:00" {
		t.Fatalf("Format(%v) = %q, want %q", d, got, "30:00")
	}
}

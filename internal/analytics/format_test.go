package analytics

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1K"},
		{1_500, "2K"},
		{2_500, "3K"},
		{410_000, "410K"},
		{1_500_000, "2M"},
		{245_000_000, "245M"},
		{999_999_999, "1000M"},
		{1_000_000_000, "1.0B"},
		{1_250_000_000, "1.3B"},
		{-5, "-5"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{950, "950"},
		{1_000, "1.0K"},
		{1_500_000, "1.5M"},
		{38_000_000, "38.0M"},
		{2_450_000_000, "2.5B"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "short text unchanged",
			in:   "buy milk",
			max:  100,
			want: "buy milk",
		},
		{
			name: "exact length unchanged",
			in:   "abcde",
			max:  5,
			want: "abcde",
		},
		{
			name: "long text truncated",
			in:   "abcdefghij",
			max:  5,
			want: "abcde...",
		},
		{
			name: "multibyte runes counted not bytes",
			in:   "日本語のテキスト",
			max:  3,
			want: "日本語...",
		},
		{
			name: "empty",
			in:   "",
			max:  10,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestDueBadge(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{
			name: "same day is today",
			due:  time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local),
			want: "Today",
		},
		{
			name: "next day is tomorrow",
			due:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local),
			want: "Tomorrow",
		},
		{
			name: "same year shows month and day",
			due:  time.Date(2025, 7, 4, 12, 0, 0, 0, time.Local),
			want: "Jul 4",
		},
		{
			name: "other year includes year",
			due:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
			want: "Jan 2, 2026",
		},
		{
			name: "past date same year",
			due:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
			want: "Feb 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueBadge(tt.due, now); got != tt.want {
				t.Errorf("DueBadge(%v) = %q, want %q", tt.due, got, tt.want)
			}
		})
	}
}

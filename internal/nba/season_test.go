package nba

import (
	"testing"
	"time"
)

func TestCurrentSeasonRollsOverInJuly(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, time.March, 15, 12, 0, 0, 0, easternTZ), "2023-24"},
		{time.Date(2024, time.June, 30, 23, 59, 0, 0, easternTZ), "2023-24"},
		{time.Date(2024, time.July, 1, 0, 0, 0, 0, easternTZ), "2024-25"},
		{time.Date(2024, time.December, 25, 0, 0, 0, 0, easternTZ), "2024-25"},
	}
	for _, tc := range tests {
		if got := currentSeason(tc.now); got != tc.want {
			t.Errorf("currentSeason(%s) = %q, want %q", tc.now.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestSeasonID(t *testing.T) {
	if got := seasonID(2023); got != "2023-24" {
		t.Fatalf("seasonID(2023) = %q, want %q", got, "2023-24")
	}
	if got := seasonID(1999); got != "1999-00" {
		t.Fatalf("seasonID(1999) = %q, want %q", got, "1999-00")
	}
}

func TestSeasonIDFromBounds(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2015", "2016", "2015-16"},
		{"2016", "", "2015-16"},
		{"", "", "2023-24"},
	}
	for _, tc := range tests {
		if got := seasonIDFromBounds(tc.start, tc.end, "2023-24"); got != tc.want {
			t.Errorf("seasonIDFromBounds(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestSplitPlayerQuery(t *testing.T) {
	tests := []struct {
		in               string
		name, start, end string
	}{
		{"lebron james", "lebron james", "", ""},
		{"lebron james 2015", "lebron james", "2015", ""},
		{"lebron james 2015 16", "lebron james", "2015", "16"},
		{"lebron james 2015-16", "lebron james", "2015", "16"},
		{"2544", "2544", "", ""},
		{"  LeBron  ", "lebron", "", ""},
	}
	for _, tc := range tests {
		name, start, end := splitPlayerQuery(tc.in)
		if name != tc.name || start != tc.start || end != tc.end {
			t.Errorf("splitPlayerQuery(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tc.in, name, start, end, tc.name, tc.start, tc.end)
		}
	}
}

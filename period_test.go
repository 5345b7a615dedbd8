package minimarket

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"today", Daily, false},
		{"day", Daily, false},
		{"week", Weekly, false},
		{"month", Monthly, false},
		{"year", Yearly, false},
		{"Month", Monthly, false},
		{"quarter", Daily, true},
		{"", Daily, true},
	}
	for _, tc := range tests {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriodRange(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period   Period
		wantFrom time.Time
	}{
		{Daily, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{Weekly, time.Date(2025, time.March, 8, 14, 30, 0, 0, time.UTC)},
		{Monthly, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Yearly, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.period.String(), func(t *testing.T) {
			r := tc.period.Range(now)
			if !r.From.Equal(tc.wantFrom) {
				t.Errorf("From = %v, want %v", r.From, tc.wantFrom)
			}
			if !r.To.Equal(now) {
				t.Errorf("To = %v, want now", r.To)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
	}
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"inside", time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC), true},
		{"on the lower boundary", r.From, true},
		{"on the upper boundary", r.To, true},
		{"before", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{"after", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.at); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

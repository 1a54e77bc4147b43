package statements

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: " 2024-12-31 ", want: NewDate(2024, time.December, 31)},
		{in: "15/01/2024", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "2024-01", want: NewPeriod(2024, time.January)},
		{in: "2024-7", want: NewPeriod(2024, time.July)},
		{in: "2024-01-15", wantErr: true},
		{in: "january", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePeriod(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriodContains(t *testing.T) {
	p := NewPeriod(2024, time.February)
	testCases := []struct {
		date Date
		want bool
	}{
		{NewDate(2024, time.February, 1), true},
		{NewDate(2024, time.February, 29), true}, // leap year
		{NewDate(2024, time.January, 31), false},
		{NewDate(2024, time.March, 1), false},
		{NewDate(2023, time.February, 15), false},
	}
	for _, tc := range testCases {
		if got := p.Contains(tc.date); got != tc.want {
			t.Errorf("Period(%s).Contains(%s) = %v, want %v", p, tc.date, got, tc.want)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	p := NewPeriod(2024, time.February)
	if got, want := p.Start(), NewDate(2024, time.February, 1); got != want {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := p.End(), NewDate(2024, time.February, 29); got != want {
		t.Errorf("End() = %v, want %v", got, want)
	}
	if got, want := p.Next(), NewPeriod(2024, time.March); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got, want := p.Prev(), NewPeriod(2024, time.January); got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}
	// Prev across a year boundary.
	if got, want := NewPeriod(2024, time.January).Prev(), NewPeriod(2023, time.December); got != want {
		t.Errorf("Prev() across year = %v, want %v", got, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 10), NewDate(2024, time.January, 20))
	if !r.Contains(NewDate(2024, time.January, 10)) || !r.Contains(NewDate(2024, time.January, 20)) {
		t.Error("range boundaries should be included")
	}
	if r.Contains(NewDate(2024, time.January, 9)) || r.Contains(NewDate(2024, time.January, 21)) {
		t.Error("dates outside the range should be excluded")
	}
	// Swapped boundaries are normalized.
	swapped := NewRange(NewDate(2024, time.January, 20), NewDate(2024, time.January, 10))
	if swapped != r {
		t.Errorf("NewRange should swap from/to, got %v", swapped)
	}
}

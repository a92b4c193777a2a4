package period

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Tag
		wantErr bool
	}{
		{"years", Year, false},
		{"quarters", Quarter, false},
		{"months", Month, false},
		{"weeks", Week, false},
		{"days", Day, false},
		{"hours", Hour, false},
		{"minutes", Minute, false},
		{"seconds", Second, false},
		{"milliseconds", Millisecond, false},
		{"microseconds", Microsecond, false},
		{"nanoseconds", Nanosecond, false},
		{"", 0, true},          // empty
		{"month", 0, true},     // singular
		{"Months", 0, true},    // case-sensitive
		{"fortnight", 0, true}, // unknown
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownUnit) {
					t.Fatalf("Expected ErrUnknownUnit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTagRoundTrip(t *testing.T) {
	for tag := Year; tag <= Nanosecond; tag++ {
		got, err := Parse(tag.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", tag.String(), err)
		}
		if got != tag {
			t.Errorf("Parse(%q) = %v, want %v", tag.String(), got, tag)
		}
	}
}

func TestIsCalendar(t *testing.T) {
	calendar := map[Tag]bool{Year: true, Quarter: true, Month: true, Week: true}
	for tag := Year; tag <= Nanosecond; tag++ {
		if tag.IsCalendar() != calendar[tag] {
			t.Errorf("%v.IsCalendar() = %v, want %v", tag, tag.IsCalendar(), calendar[tag])
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		tag  Tag
		want time.Duration
		ok   bool
	}{
		{Year, 0, false},
		{Quarter, 0, false},
		{Month, 0, false},
		{Week, 0, false},
		{Day, 24 * time.Hour, true},
		{Hour, time.Hour, true},
		{Minute, time.Minute, true},
		{Second, time.Second, true},
		{Millisecond, time.Millisecond, true},
		{Microsecond, time.Microsecond, true},
		{Nanosecond, time.Nanosecond, true},
	}

	for _, tt := range tests {
		d, ok := tt.tag.Duration()
		if ok != tt.ok || d != tt.want {
			t.Errorf("%v.Duration() = (%v, %v), want (%v, %v)", tt.tag, d, ok, tt.want, tt.ok)
		}
	}
}

func TestUnitValidate(t *testing.T) {
	if err := Months(1).Validate(); err != nil {
		t.Errorf("Months(1).Validate() = %v, want nil", err)
	}
	if err := Months(0).Validate(); !errors.Is(err, ErrNonPositive) {
		t.Errorf("Months(0).Validate() = %v, want ErrNonPositive", err)
	}
	if err := Hours(-2).Validate(); !errors.Is(err, ErrNonPositive) {
		t.Errorf("Hours(-2).Validate() = %v, want ErrNonPositive", err)
	}
}

func TestUnitString(t *testing.T) {
	if got := Months(2).String(); got != "2 months" {
		t.Errorf("Months(2).String() = %q, want %q", got, "2 months")
	}
}

package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestCompare(t *testing.T) {
	a, b := MustParse("2024-02-14"), MustParse("2024-02-15")
	if got := a.Compare(b); got != -1 {
		t.Errorf("%v.Compare(%v) = %d, want -1", a, b, got)
	}
	if got := b.Compare(a); got != 1 {
		t.Errorf("%v.Compare(%v) = %d, want 1", b, a, got)
	}
	if got := a.Compare(New(2024, time.February, 14)); got != 0 {
		t.Errorf("%v.Compare(same day) = %d, want 0", a, got)
	}
	if got := b.Sub(a); got != 1 {
		t.Errorf("%v.Sub(%v) = %d, want 1", b, a, got)
	}
}

func TestParseInput(t *testing.T) {
	today := New(2024, time.February, 14)
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "t", want: today},
		{in: " Today ", want: today},
		{in: "02/15/2024", want: New(2024, time.February, 15)},
		{in: "2/5/24", want: New(2024, time.February, 5)},
		{in: "12/31/1999", want: New(1999, time.December, 31)},
		{in: "2024-3-1", want: New(2024, time.March, 1)},
		{in: "02/30/2024", wantErr: true},
		{in: "13/01/2024", wantErr: true},
		{in: "02/15/1800", wantErr: true},
		{in: "02/15", wantErr: true},
		{in: "feb/15/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseInput(tc.in, today)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseInput(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInput(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseInput(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, time.February, 14)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-02-14"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, "2024-02-14")
	}
	var got Date
	if err := got.UnmarshalJSON([]byte(`"2024-2-14"`)); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, d)
	}
}

func TestNow(t *testing.T) {
	t.Setenv(EnvTestingNow, "2024-02-14 10:30:00")
	if got, want := Today(), New(2024, time.February, 14); got != want {
		t.Errorf("Today() = %v, want %v", got, want)
	}
	if got := Now().Hour(); got != 10 {
		t.Errorf("Now().Hour() = %d, want 10", got)
	}
}

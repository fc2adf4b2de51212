package seasons

import (
	"testing"
	"time"
)

func TestFromDate(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2023-10-24", "2023-24"},
		{"2024-01-15", "2023-24"},
		{"2024-06-17", "2023-24"},
		{"2024-09-30", "2023-24"},
		{"2024-10-01", "2024-25"},
		{"1999-12-31", "1999-00"},
		{"2000-01-01", "1999-00"},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := FromDate(d); got != tc.want {
			t.Errorf("FromDate(%s) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(2023); got != "2023-24" {
		t.Errorf("Label(2023) = %q", got)
	}
	if got := Label(2009); got != "2009-10" {
		t.Errorf("Label(2009) = %q", got)
	}
}

func TestStartYear(t *testing.T) {
	year, err := StartYear("2023-24")
	if err != nil || year != 2023 {
		t.Errorf("got (%d, %v)", year, err)
	}
	if _, err := StartYear("2023"); err == nil {
		t.Error("malformed label accepted")
	}
}

func TestToSeasonID(t *testing.T) {
	id, err := ToSeasonID("2023-24")
	if err != nil || id != "22023" {
		t.Errorf("got (%q, %v)", id, err)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		season string
		want   bool
	}{
		{"2023-24", true},
		{"1999-00", true},
		{"2023-25", false},
		{"2023", false},
		{"23-24", false},
		{"2023/24", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.season); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.season, got, tc.want)
		}
	}
}

func TestRange(t *testing.T) {
	got := Range(2021, 2023)
	want := []string{"2023-24", "2022-23", "2021-22"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if out := Range(2023, 2021); len(out) != 0 {
		t.Errorf("inverted range = %v, want empty", out)
	}
}

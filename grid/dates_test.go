package grid

import "testing"

func TestDateRangeSequential(t *testing.T) {
	dates := DateRange("2024-01-30", 4)
	if len(dates) != 4 {
		t.Fatalf("expected 4 dates, got %d", len(dates))
	}
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("date %d: expected %s, got %s", i, want[i], dates[i])
		}
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	dates := DateRange("2024-06-15", 1)
	if len(dates) != 1 || dates[0] != "2024-06-15" {
		t.Fatalf("expected [2024-06-15], got %v", dates)
	}
}

func TestDateOnly(t *testing.T) {
	cases := map[string]string{
		"2024-01-02 14:30:00": "2024-01-02",
		"2024-01-02":          "2024-01-02",
		"":                    "",
		"not a date":          "",
	}
	for in, want := range cases {
		if got := DateOnly(in); got != want {
			t.Errorf("DateOnly(%q): expected %q, got %q", in, want, got)
		}
	}
}

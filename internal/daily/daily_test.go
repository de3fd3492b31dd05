package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	tm := time.Date(2024, time.February, 24, 22, 30, 0, 0, loc)
	if got := DateKey(tm); got != "2024-02-24" {
		t.Errorf("DateKey = %q, want local date 2024-02-24", got)
	}

	parsed, err := ParseDateKey("2024-02-24")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if DateKey(parsed) != "2024-02-24" {
		t.Errorf("round trip = %q", DateKey(parsed))
	}
	if _, err := ParseDateKey("24/02/2024"); err == nil {
		t.Error("ParseDateKey accepted a malformed key")
	}
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2024, time.February, 24, 0, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 500)
	if a < 0 || a >= 500 {
		t.Fatalf("WordIndex = %d, out of range", a)
	}
	if b := WordIndex(day.Add(13*time.Hour), "salt", 500); b != a {
		t.Errorf("same date gave %d and %d", a, b)
	}

	// Over a month some days must land on different words.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 500)] = true
	}
	if len(seen) < 2 {
		t.Errorf("30 days produced %d distinct indexes", len(seen))
	}

	long := string(make([]byte, 200))
	if got := WordIndex(day, long, 500); got < 0 || got >= 500 {
		t.Errorf("long salt WordIndex = %d", got)
	}
	if got := WordIndex(day, "salt", 0); got != 0 {
		t.Errorf("empty list WordIndex = %d, want 0", got)
	}
}

func TestDaysSinceLaunch(t *testing.T) {
	if got := DaysSinceLaunch(Launch); got != 0 {
		t.Errorf("DaysSinceLaunch(Launch) = %d", got)
	}
	if got := DaysSinceLaunch(time.Date(2021, time.June, 20, 23, 0, 0, 0, time.UTC)); got != 1 {
		t.Errorf("DaysSinceLaunch(next day) = %d, want 1", got)
	}
}

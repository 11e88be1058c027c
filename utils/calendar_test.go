package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestGregorianToHijri(t *testing.T) {
	tests := []struct {
		name     string
		g        time.Time
		expDay   int
		expMonth int
		expYear  int
	}{
		{name: "new year 2024", g: date(2024, time.January, 1), expDay: 21, expMonth: 6, expYear: 1445},
		{name: "mid 2024", g: date(2024, time.June, 1), expDay: 25, expMonth: 11, expYear: 1445},
		{name: "leap day", g: date(2024, time.February, 29), expDay: 19, expMonth: 8, expYear: 1445},
		{name: "ramadan 1446", g: date(2025, time.March, 1), expDay: 3, expMonth: 9, expYear: 1446},
		{name: "start of month", g: date(2025, time.September, 22), expDay: 1, expMonth: 4, expYear: 1447},
		{name: "millennium", g: date(2000, time.January, 1), expDay: 26, expMonth: 9, expYear: 1420},
		{name: "muharram 1420", g: date(1999, time.April, 17), expDay: 3, expMonth: 1, expYear: 1420},
		{name: "muharram 1445", g: date(2023, time.July, 19), expDay: 3, expMonth: 1, expYear: 1445},
		{name: "far future", g: date(2030, time.December, 31), expDay: 8, expMonth: 9, expYear: 1452},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := GregorianToHijri(tc.g)
			if h.Day != tc.expDay || h.Month != tc.expMonth || h.Year != tc.expYear {
				t.Fatalf("expected %d/%d/%d, got %d/%d/%d",
					tc.expDay, tc.expMonth, tc.expYear, h.Day, h.Month, h.Year)
			}
		})
	}
}

// The conversion carries an explicit correction: a computed 28 ربيع الأول
// is emitted as 27. These Gregorian dates land on raw day 28, month 3.
func TestGregorianToHijriRabiCorrection(t *testing.T) {
	tests := []struct {
		g       time.Time
		expYear int
	}{
		{g: date(2023, time.October, 11), expYear: 1445},
		{g: date(2024, time.October, 1), expYear: 1446},
		{g: date(2025, time.September, 19), expYear: 1447},
	}

	for _, tc := range tests {
		h := GregorianToHijri(tc.g)
		if h.Day != 27 || h.Month != 3 || h.Year != tc.expYear {
			t.Fatalf("%s: expected 27/3/%d, got %d/%d/%d",
				tc.g.Format("2006-01-02"), tc.expYear, h.Day, h.Month, h.Year)
		}
	}
}

func TestApproximateHijriFallback(t *testing.T) {
	h := approximateHijri(date(2024, time.June, 15))
	if h.Year != 1360 { // floor((2024-622)*0.9702)
		t.Fatalf("expected approximate year 1360, got %d", h.Year)
	}
	if h.Day != 15 || h.Month != 6 {
		t.Fatalf("expected day/month carried over, got %d/%d", h.Day, h.Month)
	}

	// The analogous correction on the fallback path.
	h = approximateHijri(date(2024, time.March, 27))
	if h.Day != 26 || h.Month != 3 {
		t.Fatalf("expected fallback correction 26/3, got %d/%d", h.Day, h.Month)
	}
}

func TestToArabicNumerals(t *testing.T) {
	tests := []struct {
		in  int
		out string
	}{
		{0, "٠"},
		{7, "٧"},
		{1445, "١٤٤٥"},
		{2024, "٢٠٢٤"},
		{-12, "-١٢"},
	}
	for _, tc := range tests {
		if got := ToArabicNumerals(tc.in); got != tc.out {
			t.Fatalf("ToArabicNumerals(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestStartOfWeekIsAlwaysSaturday(t *testing.T) {
	// A full week of anchors, Saturday through Friday.
	for d := 5; d <= 11; d++ {
		day := date(2024, time.October, d)
		start := StartOfWeek(day)
		if start.Weekday() != time.Saturday {
			t.Fatalf("StartOfWeek(%s) = %s, not a Saturday", day.Format("2006-01-02"), start.Format("2006-01-02 Mon"))
		}
		if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
			t.Fatalf("StartOfWeek not at midnight: %s", start)
		}
	}

	// 2024-10-05 is itself a Saturday and must map to itself.
	sat := date(2024, time.October, 5)
	if !StartOfWeek(sat).Equal(sat) {
		t.Fatalf("Saturday should be its own week start, got %s", StartOfWeek(sat))
	}
}

func TestEndOfWeek(t *testing.T) {
	d := date(2024, time.October, 9) // Wednesday
	start := StartOfWeek(d)
	end := EndOfWeek(d)

	if end.Weekday() != time.Friday {
		t.Fatalf("EndOfWeek should be Friday, got %s", end.Weekday())
	}
	want := start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
	if !end.Equal(want) {
		t.Fatalf("EndOfWeek = %s, want %s", end, want)
	}
}

func TestMonthBounds(t *testing.T) {
	d := date(2024, time.February, 15)
	if got := StartOfMonth(d); !got.Equal(date(2024, time.February, 1)) {
		t.Fatalf("StartOfMonth = %s", got)
	}
	end := EndOfMonth(d)
	if end.Day() != 29 || end.Month() != time.February {
		t.Fatalf("EndOfMonth of leap February = %s", end)
	}
	if end.Hour() != 23 || end.Minute() != 59 {
		t.Fatalf("EndOfMonth not at end of day: %s", end)
	}

	// December must not leak into the next year.
	dec := EndOfMonth(date(2023, time.December, 10))
	if dec.Year() != 2023 || dec.Month() != time.December || dec.Day() != 31 {
		t.Fatalf("EndOfMonth of December = %s", dec)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	d := time.Date(2024, time.June, 7, 15, 30, 45, 0, time.Local)
	key := DateKey(d)
	if key != "2024-06-07" {
		t.Fatalf("DateKey = %q", key)
	}

	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if DateKey(parsed) != key {
		t.Fatalf("round trip changed key: %q", DateKey(parsed))
	}

	if _, err := ParseDateKey("07/06/2024"); err == nil {
		t.Fatalf("expected error for non-canonical key")
	}
}

package services

import (
	"testing"
	"time"

	"halaqa_go/models"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func recordsOn(keys ...string) models.RecordStore {
	rs := models.RecordStore{}
	for _, key := range keys {
		rs[key] = models.DailyRecord{1: {Memorized: true}}
	}
	return rs
}

func TestSelectRangeToday(t *testing.T) {
	now := time.Date(2024, time.October, 9, 14, 30, 0, 0, time.Local)
	rs := recordsOn("2024-10-08", "2024-10-09", "2024-10-10")

	got := SelectRange(rs, RangeToday, now)
	if len(got) != 1 {
		t.Fatalf("expected exactly today's entry, got %d entries", len(got))
	}
	if _, ok := got["2024-10-09"]; !ok {
		t.Fatalf("today's entry missing: %v", got)
	}
}

func TestSelectRangeAllIsUnfiltered(t *testing.T) {
	now := localDate(2024, time.October, 9)
	rs := recordsOn("2019-01-01", "2024-10-09", "not-a-date")

	got := SelectRange(rs, RangeAll, now)
	if len(got) != len(rs) {
		t.Fatalf("all must pass every entry through, got %d of %d", len(got), len(rs))
	}
}

func TestSelectRangeWeek(t *testing.T) {
	// Wednesday; its week runs Saturday 2024-10-05 through Friday 2024-10-11.
	now := localDate(2024, time.October, 9)
	rs := recordsOn("2024-10-04", "2024-10-05", "2024-10-11", "2024-10-12")

	got := SelectRange(rs, RangeWeek, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
	for _, key := range []string{"2024-10-05", "2024-10-11"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("missing %s", key)
		}
	}
}

// lastWeek is derived by stepping now back seven days and then taking
// that date's whole week, not by shifting the current week's literal
// boundaries.
func TestSelectRangeLastWeekDerivation(t *testing.T) {
	now := localDate(2024, time.October, 9) // Wednesday

	start, end, all := RangeBounds(RangeLastWeek, now)
	if all {
		t.Fatalf("lastWeek must produce bounds")
	}

	shifted := now.AddDate(0, 0, -7)
	if start.Weekday() != time.Saturday {
		t.Fatalf("lastWeek start is %s, not Saturday", start.Weekday())
	}
	if !(start.Equal(localDate(2024, time.September, 28))) {
		t.Fatalf("lastWeek start = %s", start.Format("2006-01-02"))
	}
	if shifted.Before(start) || shifted.After(end) {
		t.Fatalf("now-7d (%s) must fall inside [%s, %s]",
			shifted.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if end.Weekday() != time.Friday {
		t.Fatalf("lastWeek end is %s, not Friday", end.Weekday())
	}

	rs := recordsOn("2024-09-27", "2024-09-28", "2024-10-04", "2024-10-05")
	got := SelectRange(rs, RangeLastWeek, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
}

func TestSelectRangeLastMonthYearRollover(t *testing.T) {
	now := localDate(2024, time.January, 15)

	start, end, _ := RangeBounds(RangeLastMonth, now)
	if start.Year() != 2023 || start.Month() != time.December || start.Day() != 1 {
		t.Fatalf("lastMonth start = %s", start.Format("2006-01-02"))
	}
	if end.Year() != 2023 || end.Month() != time.December || end.Day() != 31 {
		t.Fatalf("lastMonth end = %s", end.Format("2006-01-02"))
	}

	rs := recordsOn("2023-11-30", "2023-12-01", "2023-12-31", "2024-01-01")
	got := SelectRange(rs, RangeLastMonth, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
}

func TestSelectRangeMonth(t *testing.T) {
	now := localDate(2024, time.February, 10)
	rs := recordsOn("2024-01-31", "2024-02-01", "2024-02-29", "2024-03-01")

	got := SelectRange(rs, RangeMonth, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
}

func TestParseRange(t *testing.T) {
	for _, valid := range []string{"today", "week", "month", "lastWeek", "lastMonth", "all"} {
		if _, err := ParseRange(valid); err != nil {
			t.Fatalf("ParseRange(%q) errored: %v", valid, err)
		}
	}
	if _, err := ParseRange("fortnight"); err == nil {
		t.Fatalf("expected error for unknown range")
	}
}

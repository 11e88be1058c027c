package services

import (
	"time"

	"halaqa_go/models"
	"halaqa_go/utils"
)

// RangeName is a named, now-relative statistics window.
type RangeName string

const (
	RangeToday     RangeName = "today"
	RangeWeek      RangeName = "week"
	RangeMonth     RangeName = "month"
	RangeLastWeek  RangeName = "lastWeek"
	RangeLastMonth RangeName = "lastMonth"
	RangeAll       RangeName = "all"
)

// ParseRange validates a range name coming off the wire.
func ParseRange(s string) (RangeName, error) {
	switch RangeName(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeLastWeek, RangeLastMonth, RangeAll:
		return RangeName(s), nil
	}
	return "", models.NewValidationError("unknown range %q", s)
}

// RangeBounds computes the inclusive [start, end] window for a named
// range relative to now. For RangeAll it reports all=true and the bounds
// are meaningless.
func RangeBounds(name RangeName, now time.Time) (start, end time.Time, all bool) {
	switch name {
	case RangeToday:
		start = startOfDay(now)
		end = start.Add(endOfDayOffset)
	case RangeWeek:
		start = utils.StartOfWeek(now)
		end = utils.EndOfWeek(now)
	case RangeMonth:
		start = utils.StartOfMonth(now)
		end = utils.EndOfMonth(now)
	case RangeLastWeek:
		// Step back seven days first, then take that date's whole week.
		shifted := now.AddDate(0, 0, -7)
		start = utils.StartOfWeek(shifted)
		end = utils.EndOfWeek(start)
	case RangeLastMonth:
		prev := utils.StartOfMonth(now).AddDate(0, -1, 0)
		start = prev
		end = utils.EndOfMonth(prev)
	default:
		all = true
	}
	return start, end, all
}

// SelectRange returns the subset of records whose date keys fall inside
// the named range. RangeAll passes every entry through without parsing.
func SelectRange(records models.RecordStore, name RangeName, now time.Time) models.RecordStore {
	start, end, all := RangeBounds(name, now)
	if all {
		return records
	}

	filtered := models.RecordStore{}
	for key, record := range records {
		day, err := utils.ParseDateKey(key)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			filtered[key] = record
		}
	}
	return filtered
}

const endOfDayOffset = 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

func startOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

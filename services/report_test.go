package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"halaqa_go/models"

	"github.com/stretchr/testify/assert"
)

func reportFixture() ([]models.Student, models.SiteSettings) {
	students := []models.Student{
		{ID: 1, Name: "ريان"},
		{ID: 2, Name: "عمرو مصطفى"},
	}
	return students, models.DefaultSettings()
}

func TestGenerateReportHeaderAndFooter(t *testing.T) {
	students, settings := reportFixture()
	day := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.Local) // Friday

	report := GenerateReport(day, models.DailyRecord{}, students, settings)

	assert.True(t, strings.HasPrefix(report, "السلام عليكم ورحمة الله وبركاته\n"))
	assert.Contains(t, report, "تقرير نتائج حلقة زيد بن الدثنة لليوم")
	assert.Contains(t, report, "التاريخ: الجمعة ٢٠٢٤/٦/٧")
	assert.True(t, strings.HasSuffix(report, "مركز بدر لتعليم القرآن الكريم – إدارة حلقة زيد بن الدثنة"))
	assert.Contains(t, report, reportSeparator)
}

func TestGenerateReportMarkers(t *testing.T) {
	students, settings := reportFixture()
	day := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.Local)
	record := models.DailyRecord{
		1: {Memorized: true},
		2: {Absent: true},
	}

	report := GenerateReport(day, record, students, settings)

	assert.Contains(t, report, "حفظ: ✅")
	assert.Contains(t, report, "مراجعة: ❌")
	assert.Contains(t, report, markerAbsent)
	// The absent row carries no memorization/review columns; only one
	// student row should have them.
	assert.Equal(t, 1, strings.Count(report, "حفظ:"))
}

func TestGenerateReportExcused(t *testing.T) {
	students, settings := reportFixture()
	day := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.Local)
	record := models.DailyRecord{2: {Excused: true}}

	report := GenerateReport(day, record, students, settings)
	assert.Contains(t, report, markerExcused)
}

// An open-ended suspension from 2024-01-01 with stop_save replaces the
// memorization marker on 2024-06-01 even though memorized=true is stored.
func TestGenerateReportSuspensionOverride(t *testing.T) {
	settings := models.DefaultSettings()
	students := []models.Student{{
		ID:   1,
		Name: "ريان",
		Suspension: &models.Suspension{
			StartDate: "2024-01-01",
			StopSave:  true,
		},
	}}
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	record := models.DailyRecord{1: {Memorized: true, Reviewed: true}}

	report := GenerateReport(day, record, students, settings)

	assert.Contains(t, report, "حفظ: "+padCell(markerSuspended, markerWidth))
	assert.NotContains(t, report, "حفظ: ✅")
	// The review column is untouched.
	assert.Contains(t, report, "مراجعة: ✅")
}

func TestGenerateReportSuspensionOutsideWindow(t *testing.T) {
	settings := models.DefaultSettings()
	end := "2024-02-01"
	students := []models.Student{{
		ID:   1,
		Name: "ريان",
		Suspension: &models.Suspension{
			StartDate: "2024-01-01",
			EndDate:   &end,
			StopSave:  true,
		},
	}}
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	record := models.DailyRecord{1: {Memorized: true}}

	report := GenerateReport(day, record, students, settings)
	assert.Contains(t, report, "حفظ: ✅")
	assert.NotContains(t, report, markerSuspended)
}

// Absence and excuse win over an active suspension: the row shows the
// absence marker and no columns at all.
func TestGenerateReportAbsenceBeatsSuspension(t *testing.T) {
	settings := models.DefaultSettings()
	students := []models.Student{{
		ID:         1,
		Name:       "ريان",
		Suspension: &models.Suspension{StartDate: "2024-01-01", StopSave: true, StopReview: true},
	}}
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	record := models.DailyRecord{1: {Absent: true}}

	report := GenerateReport(day, record, students, settings)
	assert.Contains(t, report, markerAbsent)
	assert.NotContains(t, report, markerSuspended)
	assert.NotContains(t, report, "حفظ:")
}

func TestGenerateReportEmptyRoster(t *testing.T) {
	settings := models.DefaultSettings()
	day := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.Local)

	report := GenerateReport(day, models.DailyRecord{}, nil, settings)
	assert.Contains(t, report, "لا يوجد طلاب مسجلون في الحلقة.")
	assert.NotContains(t, report, reportSeparator)
}

func TestPadCell(t *testing.T) {
	padded := padCell("ريان", nameColumnWidth)
	assert.Equal(t, nameColumnWidth, utf8.RuneCountInString(padded))

	long := strings.Repeat("م", nameColumnWidth+3)
	assert.Equal(t, long, padCell(long, nameColumnWidth))

	marker := padCell("✅", markerWidth)
	assert.Equal(t, markerWidth, utf8.RuneCountInString(marker))
}

package services

import (
	"fmt"

	"halaqa_go/models"

	"github.com/xuri/excelize/v2"
)

// statsSheetHeaders are the spreadsheet column titles, matching the
// labels of the on-screen statistics cards.
var statsSheetHeaders = []string{"الاسم", "أيام الحفظ", "أيام المراجعة", "أيام الغياب", "أيام الاستئذان"}

// BuildStatsWorkbook renders aggregated statistics rows into an .xlsx
// workbook for download, one row per student in roster order.
func BuildStatsWorkbook(rows []StudentStats, rangeName RangeName, settings models.SiteSettings) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "الإحصائيات"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s — %s (%s)", settings.ClassName, settings.TeacherName, rangeName)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	for col, header := range statsSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{row.Name, row.Memorized, row.Reviewed, row.Absent, row.Excused}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return nil, err
	}
	return f, nil
}
